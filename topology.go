package facecanvas

// Region names an ordered sequence of landmark indices describing a polyline,
// a closed polygon or a set of isolated points of the face mesh.
//
// The indices follow the MediaPipe Face Mesh topology: 468 face landmarks
// followed by 10 iris landmarks when iris refinement is enabled. The table
// has no way to verify that a landmark list matches this topology; it is up
// to the detector to produce lists with the expected point order.
type Region string

const (
	RightEye           Region = "RIGHT_EYE"
	LeftEye            Region = "LEFT_EYE"
	RightEyeBrowTop    Region = "RIGHT_EYE_BROW_TOP"
	RightEyeBrowBottom Region = "RIGHT_EYE_BROW_BOTTOM"
	LeftEyeBrowTop     Region = "LEFT_EYE_BROW_TOP"
	LeftEyeBrowBottom  Region = "LEFT_EYE_BROW_BOTTOM"
	InnerLips          Region = "INNER_LIPS"
	OuterLips          Region = "OUTER_LIPS"
	NoseTop            Region = "NOSE_TOP"
	NoseBase           Region = "NOSE_BASE"
	Silhouette         Region = "SILHOUETTE"
	FaceOval           Region = "FACE_OVAL"
	LeftIris           Region = "LEFT_IRIS"
	RightIris          Region = "RIGHT_IRIS"
)

// Repeated indices (157 and 384 in the eye contours) are intentional.
var topology = map[Region][]int{
	RightEye: {
		33, 7, 163, 144, 145, 153, 154, 155, 133, 173, 157, 157, 158, 159, 160, 161,
		246,
	},
	LeftEye: {
		263, 249, 390, 373, 374, 380, 381, 382, 362, 398, 384, 384, 385, 386, 387,
		388, 466,
	},
	RightEyeBrowTop:    {70, 63, 105, 66, 107},
	RightEyeBrowBottom: {46, 53, 52, 65, 55},
	LeftEyeBrowTop:     {300, 293, 334, 296, 336},
	LeftEyeBrowBottom:  {276, 283, 282, 295, 285},
	InnerLips: {
		78, 191, 80, 81, 82, 13, 312, 311, 310, 415, 308, 324, 318, 402, 317, 14,
		87, 178, 88, 95,
	},
	OuterLips: {
		61, 185, 40, 39, 37, 0, 267, 269, 270, 409, 291, 375, 321, 405, 314, 17, 84,
		181, 91, 146,
	},
	NoseTop:  {6, 197, 195, 5, 4},
	NoseBase: {98, 97, 2, 328, 327},
	Silhouette: {
		454, 323, 361, 288, 397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150,
		136, 172, 58, 132, 93, 234,
	},
	FaceOval: {
		10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288, 397, 365, 379,
		378, 400, 377, 152, 148, 176, 149, 150, 136, 172, 58, 132, 93, 234, 127,
		162, 21, 54, 103, 67, 109,
	},
	LeftIris:  {468},
	RightIris: {473},
}

var regionOrder = []Region{
	RightEye, LeftEye,
	RightEyeBrowTop, RightEyeBrowBottom,
	LeftEyeBrowTop, LeftEyeBrowBottom,
	InnerLips, OuterLips,
	NoseTop, NoseBase,
	Silhouette, FaceOval,
	LeftIris, RightIris,
}

// Indices returns a copy of the landmark indices making up the region.
// The second value is false for unknown regions.
func Indices(r Region) ([]int, bool) {
	idx, ok := topology[r]
	if !ok {
		return nil, false
	}
	return append([]int(nil), idx...), true
}

// Regions returns every known region in declaration order.
func Regions() []Region {
	return append([]Region(nil), regionOrder...)
}

// MaxIndex returns the largest landmark index referenced by the regions,
// or -1 if none of them is known. Without arguments every region is considered.
func MaxIndex(regions ...Region) int {
	if len(regions) == 0 {
		regions = regionOrder
	}
	max := -1
	for _, r := range regions {
		for _, i := range topology[r] {
			if i > max {
				max = i
			}
		}
	}
	return max
}

func (r Region) String() string { return string(r) }
