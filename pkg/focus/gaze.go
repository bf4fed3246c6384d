package focus

import (
	"math"

	"github.com/focuswizard/go-focus-bridge/pkg/sensing"
)

// MediaPipe dense face mesh landmark indices used for gaze estimation.
const (
	landmarkNoseTip    = 4
	landmarkForehead   = 10
	landmarkLeftCheek  = 234
	landmarkChin       = 152
	landmarkRightCheek = 454

	// DenseMeshPoints is the minimum landmark count for a full face mesh.
	// Sparser landmark sets cannot be indexed by the constants above.
	DenseMeshPoints = 468

	// minFaceExtent guards against division by a degenerate face box.
	minFaceExtent = 1.0
)

// Gaze is a 2-D gaze-deviation vector: a proxy for head orientation
// relative to forward-facing, derived from the nose tip's offset inside
// the face bounding box. Not true eye tracking.
type Gaze struct {
	X float64 // horizontal: negative left, positive right
	Y float64 // vertical: negative up, positive down
}

// Magnitude returns the Euclidean length of the deviation vector.
func (g Gaze) Magnitude() float64 {
	return math.Hypot(g.X, g.Y)
}

// EstimateGaze computes the gaze-deviation vector from a landmark set.
// It returns ok=false when the set is not a full dense mesh or the face
// geometry is degenerate; that is missing data, not an error. The output
// is not clamped to [-1, 1].
func EstimateGaze(points []sensing.Point) (Gaze, bool) {
	if len(points) < DenseMeshPoints {
		return Gaze{}, false
	}

	nose := points[landmarkNoseTip]
	left := points[landmarkLeftCheek]
	right := points[landmarkRightCheek]
	forehead := points[landmarkForehead]
	chin := points[landmarkChin]

	centerX := (left.X + right.X) / 2
	centerY := (forehead.Y + chin.Y) / 2
	width := right.X - left.X
	height := chin.Y - forehead.Y

	if width <= minFaceExtent || height <= minFaceExtent {
		return Gaze{}, false
	}

	return Gaze{
		X: (nose.X - centerX) / (width / 2),
		Y: (nose.Y - centerY) / (height / 2),
	}, true
}
