package rig

import (
	"math"

	"github.com/lixenwraith/droid-court/parameter"
)

// DOFName identifies one of the droid's degrees of freedom
type DOFName uint8

const (
	HeadRotation DOFName = iota
	BodyTilt
	ArmScale
	dofCount
)

var dofNames = [dofCount]string{"headRotation", "bodyTilt", "armScale"}

func (n DOFName) String() string {
	if n < dofCount {
		return dofNames[n]
	}
	return "unknown"
}

// ParseDOFName resolves a DOF by its wire name
func ParseDOFName(s string) (DOFName, bool) {
	for i, name := range dofNames {
		if name == s {
			return DOFName(i), true
		}
	}
	return 0, false
}

// DOF is a bounded scalar; out-of-range requests are rejected, never clamped
type DOF struct {
	Name  DOFName
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// Set applies v if it lies within [Min, Max] and reports whether it was applied
// Values within DOFTolerance past a bound snap onto the bound
func (d *DOF) Set(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	switch {
	case v < d.Min-parameter.DOFTolerance, v > d.Max+parameter.DOFTolerance:
		return false
	case v < d.Min:
		v = d.Min
	case v > d.Max:
		v = d.Max
	}
	d.Value = v
	return true
}

// Adjust requests Value + dir*Step
func (d *DOF) Adjust(dir int) bool {
	return d.Set(d.Value + float64(dir)*d.Step)
}

// InRange reports whether the current value lies within bounds
func (d DOF) InRange() bool {
	return d.Value >= d.Min && d.Value <= d.Max
}

func defaultDOFs() [dofCount]DOF {
	return [dofCount]DOF{
		HeadRotation: {Name: HeadRotation, Min: parameter.HeadRotationMin, Max: parameter.HeadRotationMax, Step: parameter.HeadRotationStep},
		BodyTilt:     {Name: BodyTilt, Min: parameter.BodyTiltMin, Max: parameter.BodyTiltMax, Step: parameter.BodyTiltStep},
		ArmScale:     {Name: ArmScale, Min: parameter.ArmScaleMin, Max: parameter.ArmScaleMax, Step: parameter.ArmScaleStep, Value: parameter.ArmScaleMin},
	}
}
