package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/droid-court/parameter"
	"github.com/lixenwraith/droid-court/vmath"
)

// Segment names one rigid node of the droid hierarchy
// Declaration order is arena order: every parent precedes its children
type Segment uint8

const (
	SegRightFoot Segment = iota
	SegLeftFoot
	SegRightArm
	SegLeftArm
	SegRightShoulder
	SegLeftShoulder
	SegBody
	SegHead
	SegEye
	segmentCount
)

// SegmentCount is the fixed number of segments in the hierarchy
const SegmentCount = int(segmentCount)

var segmentNames = [segmentCount]string{
	"rightFoot", "leftFoot", "rightArm", "leftArm",
	"rightShoulder", "leftShoulder", "body", "head", "eye",
}

func (s Segment) String() string {
	if s < segmentCount {
		return segmentNames[s]
	}
	return "unknown"
}

// rootParent marks segments attached directly to the droid's root pose
const rootParent = -1

// segmentParents is the fixed tree; body hangs off the right shoulder only
var segmentParents = [segmentCount]int{
	SegRightFoot:     rootParent,
	SegLeftFoot:      rootParent,
	SegRightArm:      int(SegRightFoot),
	SegLeftArm:       int(SegLeftFoot),
	SegRightShoulder: int(SegRightFoot),
	SegLeftShoulder:  int(SegLeftFoot),
	SegBody:          int(SegRightShoulder),
	SegHead:          int(SegBody),
	SegEye:           int(SegHead),
}

// Parent returns the parent segment, ok=false for segments attached to the root
func (s Segment) Parent() (Segment, bool) {
	if s >= segmentCount {
		return 0, false
	}
	p := segmentParents[s]
	if p == rootParent {
		return 0, false
	}
	return Segment(p), true
}

// segment is one arena record
type segment struct {
	local vmath.Transform
	world mgl64.Mat4
}

// Dimensions are the droid's reference measures
type Dimensions struct {
	ArmHeight float64
	BodyWidth float64
}

// DefaultDimensions returns the reference droid
func DefaultDimensions() Dimensions {
	return Dimensions{
		ArmHeight: parameter.DroidArmHeight,
		BodyWidth: parameter.DroidBodyWidth,
	}
}

func (d Dimensions) ShoulderWidth() float64 {
	return d.BodyWidth * parameter.ShoulderWidthRatio
}

func (d Dimensions) FootHeight() float64 {
	return d.ArmHeight * parameter.FootHeightRatio
}

// HalfSpan is the lateral offset of each foot column from the center line
func (d Dimensions) HalfSpan() float64 {
	return (d.BodyWidth + d.ShoulderWidth()) / 2
}

// ChestHeight is the body pivot altitude with arms at rest
func (d Dimensions) ChestHeight() float64 {
	return d.FootHeight() + d.ArmHeight + d.ShoulderWidth()/2
}

// ContactRadius is the collision radius, proportional to body width
func (d Dimensions) ContactRadius() float64 {
	return d.BodyWidth * parameter.ContactWidthFactor
}
