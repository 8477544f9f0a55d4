package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/droid-court/parameter"
	"github.com/lixenwraith/droid-court/vmath"
)

// Direction is a discrete movement request
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Body is the articulated droid: a fixed segment arena driven by three DOFs and a root pose
// Not safe for concurrent use; the owning session serializes access
type Body struct {
	dims     Dimensions
	segments [segmentCount]segment
	dofs     [dofCount]DOF

	root  mgl64.Vec3 // ground position, Y stays 0
	yaw   float64    // radians, 0 faces +Z
	dirty bool
}

// NewBody builds the hierarchy at the origin facing +Z with DOFs at rest
func NewBody(dims Dimensions) *Body {
	b := &Body{
		dims: dims,
		dofs: defaultDOFs(),
	}

	span := dims.HalfSpan()
	sw := dims.ShoulderWidth()

	// Feet columns sit either side of the center line; right is -X
	b.segments[SegRightFoot].local = vmath.At(-span, 0, 0)
	b.segments[SegLeftFoot].local = vmath.At(span, 0, 0)

	b.segments[SegRightArm].local = vmath.At(0, dims.FootHeight(), 0)
	b.segments[SegLeftArm].local = vmath.At(0, dims.FootHeight(), 0)

	b.segments[SegRightShoulder].local = vmath.At(0, dims.FootHeight()+dims.ArmHeight, 0)
	b.segments[SegLeftShoulder].local = vmath.At(0, dims.FootHeight()+dims.ArmHeight, 0)

	// Body pivots at shoulder height, re-centered from the right shoulder column
	b.segments[SegBody].local = vmath.At(span, sw/2, 0)
	b.segments[SegHead].local = vmath.At(0, parameter.HeadLiftRatio*sw, 0)
	b.segments[SegEye].local = vmath.At(0, dims.BodyWidth/4, dims.BodyWidth/2.5)

	b.syncPose()
	return b
}

// Dimensions returns the reference measures
func (b *Body) Dimensions() Dimensions {
	return b.dims
}

// ===== Degrees of Freedom =====

// DOF returns a copy of the named degree of freedom
func (b *Body) DOF(name DOFName) DOF {
	if name >= dofCount {
		return DOF{}
	}
	return b.dofs[name]
}

// DOFs returns a copy of all degrees of freedom in name order
func (b *Body) DOFs() []DOF {
	out := make([]DOF, len(b.dofs))
	copy(out, b.dofs[:])
	return out
}

// SetDOF applies value if within the DOF's range, reporting whether it was applied
func (b *Body) SetDOF(name DOFName, value float64) bool {
	if name >= dofCount {
		return false
	}
	if !b.dofs[name].Set(value) {
		return false
	}
	b.syncPose()
	return true
}

// AdjustDOF steps the named DOF by dir steps
func (b *Body) AdjustDOF(name DOFName, dir int) bool {
	if name >= dofCount {
		return false
	}
	return b.SetDOF(name, b.dofs[name].Value+float64(dir)*b.dofs[name].Step)
}

// syncPose writes every DOF-driven local transform in one pass
// Arm scale is applied to both sides together so the pair cannot diverge
func (b *Body) syncPose() {
	scale := b.dofs[ArmScale].Value
	shoulderY := b.dims.FootHeight() + b.dims.ArmHeight*scale

	for _, arm := range [...]Segment{SegRightArm, SegLeftArm} {
		b.segments[arm].local.Scale = mgl64.Vec3{1, scale, 1}
	}
	for _, sh := range [...]Segment{SegRightShoulder, SegLeftShoulder} {
		b.segments[sh].local.Offset[1] = shoulderY
	}

	b.segments[SegBody].local.Rotation[0] = vmath.Rad(b.dofs[BodyTilt].Value)
	b.segments[SegHead].local.Rotation[1] = vmath.Rad(b.dofs[HeadRotation].Value)

	b.dirty = true
}

// ===== Movement =====

// Move displaces or turns the root and returns the new root position
// Bounds are not enforced here; leaving the court is detected by the resolver
func (b *Body) Move(dir Direction) mgl64.Vec3 {
	switch dir {
	case Forward:
		b.root = b.root.Add(vmath.FacingXZ(b.yaw).Mul(parameter.MoveStep))
	case Backward:
		b.root = b.root.Sub(vmath.FacingXZ(b.yaw).Mul(parameter.MoveStep))
	case Left:
		b.yaw = vmath.WrapAngle(b.yaw + vmath.Rad(parameter.TurnStepDegrees))
	case Right:
		b.yaw = vmath.WrapAngle(b.yaw - vmath.Rad(parameter.TurnStepDegrees))
	default:
		return b.root
	}
	b.dirty = true
	return b.root
}

// Place teleports the root onto the ground at (x, z) without changing yaw
func (b *Body) Place(x, z float64) {
	b.root = mgl64.Vec3{x, 0, z}
	b.dirty = true
}

// Root returns the ground position of the droid
func (b *Body) Root() mgl64.Vec3 {
	return b.root
}

// Yaw returns the heading in radians
func (b *Body) Yaw() float64 {
	return b.yaw
}

// Facing returns the unit forward vector on the ground plane
func (b *Body) Facing() mgl64.Vec3 {
	return vmath.FacingXZ(b.yaw)
}

// ===== World Transforms =====

// Dirty reports whether cached world transforms are stale
func (b *Body) Dirty() bool {
	return b.dirty
}

// Local returns the parent-relative transform of a segment
func (b *Body) Local(s Segment) vmath.Transform {
	if s >= segmentCount {
		return vmath.Identity()
	}
	return b.segments[s].local
}

// WorldMatrix returns the segment's world matrix, recomputing the cache if dirty
func (b *Body) WorldMatrix(s Segment) mgl64.Mat4 {
	if s >= segmentCount {
		return mgl64.Ident4()
	}
	b.ensureWorld()
	return b.segments[s].world
}

// WorldPosition returns the world-space pivot of a segment
func (b *Body) WorldPosition(s Segment) mgl64.Vec3 {
	return vmath.Origin(b.WorldMatrix(s))
}

// ChestPoint is the collision reference: the body pivot, which rides on the shoulders
func (b *Body) ChestPoint() mgl64.Vec3 {
	return b.WorldPosition(SegBody)
}

// EyeView returns the eye position and unit look direction for a first-person view
func (b *Body) EyeView() (pos, dir mgl64.Vec3) {
	m := b.WorldMatrix(SegEye)
	dir = vmath.TransformDir(m, mgl64.Vec3{0, 0, 1})
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return vmath.Origin(m), dir
}

// ensureWorld recomputes all world matrices in arena order
func (b *Body) ensureWorld() {
	if !b.dirty {
		return
	}
	rootMat := mgl64.Translate3D(b.root.X(), b.root.Y(), b.root.Z()).Mul4(mgl64.HomogRotate3DY(b.yaw))
	for i := range b.segments {
		parent := rootMat
		if p := segmentParents[i]; p != rootParent {
			parent = b.segments[p].world
		}
		b.segments[i].world = parent.Mul4(b.segments[i].local.Matrix())
	}
	b.dirty = false
}
