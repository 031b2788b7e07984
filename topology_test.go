package facecanvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopology_RegionsAreStable(t *testing.T) {
	for _, r := range Regions() {
		t.Run(r.String(), func(t *testing.T) {
			assert := assert.New(t)

			first, ok := Indices(r)
			assert.True(ok)
			assert.NotEmpty(first)

			second, ok := Indices(r)
			assert.True(ok)
			assert.Equal(first, second)

			for _, i := range first {
				assert.GreaterOrEqual(i, 0)
			}
		})
	}
}

func TestTopology_ReturnedIndicesAreCopies(t *testing.T) {
	idx, _ := Indices(NoseTop)
	idx[0] = 999

	again, _ := Indices(NoseTop)
	assert.Equal(t, []int{6, 197, 195, 5, 4}, again)

	regions := Regions()
	regions[0] = "MUTATED"
	assert.Equal(t, RightEye, Regions()[0])
}

func TestTopology_DuplicatesArePreserved(t *testing.T) {
	count := func(idx []int, v int) int {
		n := 0
		for _, i := range idx {
			if i == v {
				n++
			}
		}
		return n
	}

	right, _ := Indices(RightEye)
	left, _ := Indices(LeftEye)

	assert.Len(t, right, 17)
	assert.Len(t, left, 17)
	assert.Equal(t, 2, count(right, 157))
	assert.Equal(t, 2, count(left, 384))
}

func TestTopology_UnknownRegion(t *testing.T) {
	idx, ok := Indices("CHIN")
	assert.False(t, ok)
	assert.Nil(t, idx)
}

func TestTopology_MaxIndex(t *testing.T) {
	assert.Equal(t, 473, MaxIndex())
	assert.Equal(t, 468, MaxIndex(LeftIris))
	assert.Equal(t, 466, MaxIndex(LeftEye, RightEye))
	assert.Equal(t, -1, MaxIndex("CHIN"))
}

func TestTopology_SilhouetteIsPartOfFaceOval(t *testing.T) {
	oval, _ := Indices(FaceOval)
	silhouette, _ := Indices(Silhouette)

	assert.Len(t, oval, 36)
	assert.Subset(t, oval, silhouette)
}
