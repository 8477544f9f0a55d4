package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/droid-court/game"
	"github.com/lixenwraith/droid-court/rig"
	"github.com/lixenwraith/droid-court/spawn"
)

// Snapshot is an immutable copy of one frame for the UI
type Snapshot struct {
	Frame uint64
	State game.State

	// Droid
	Root   mgl64.Vec3
	Yaw    float64
	Facing mgl64.Vec3
	Chest  mgl64.Vec3
	EyePos mgl64.Vec3
	EyeDir mgl64.Vec3
	DOFs   []rig.DOF

	// Court
	Obstacles     []spawn.Obstacle
	Counts        spawn.Counts
	Target        int
	Difficulty    float64
	Elapsed       time.Duration // game time, frozen while paused
	Field         spawn.Field
	ContactRadius float64
	Hits          int
}

// DOF returns the named degree of freedom from the snapshot
func (s *Snapshot) DOF(name rig.DOFName) rig.DOF {
	for _, d := range s.DOFs {
		if d.Name == name {
			return d
		}
	}
	return rig.DOF{}
}
