package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a parent-relative pose: translation, Euler rotation and non-uniform scale
// Composition order is T * Ry * Rx * Rz * S, matching yaw-then-pitch for upright bodies
type Transform struct {
	Offset   mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles around X, Y, Z in radians
	Scale    mgl64.Vec3
}

// Identity returns a transform with unit scale and no offset or rotation
func Identity() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// At returns an identity transform translated to (x, y, z)
func At(x, y, z float64) Transform {
	t := Identity()
	t.Offset = mgl64.Vec3{x, y, z}
	return t
}

// Matrix composes the local matrix
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Offset.X(), t.Offset.Y(), t.Offset.Z())
	m = m.Mul4(mgl64.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl64.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl64.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// TransformPoint applies m to a point (w=1)
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDir applies m to a direction (w=0), translation ignored
func TransformDir(m mgl64.Mat4, d mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// Origin extracts the translation column of m
func Origin(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// FacingXZ returns the unit forward vector for a yaw angle; yaw 0 faces +Z
func FacingXZ(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// DistXZ is the ground-plane distance between two points
func DistXZ(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// Dist is the euclidean distance between two points
func Dist(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// SegmentDist is the distance from p to the closest point of segment ab
func SegmentDist(p, a, b mgl64.Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return Dist(p, a)
	}
	t := mgl64.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return Dist(p, a.Add(ab.Mul(t)))
}

// Rad converts degrees to radians
func Rad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

// WrapAngle normalizes an angle into (-Pi, Pi]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
