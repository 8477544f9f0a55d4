package game

import (
	"math/rand"

	"github.com/lixenwraith/droid-court/rig"
	"github.com/lixenwraith/droid-court/spawn"
	"github.com/lixenwraith/droid-court/vmath"
)

// Hit is one first contact between the droid and an obstacle
type Hit struct {
	ObstacleID uint64
	Kind       spawn.Kind
	Effect     spawn.Effect
	Distance   float64
}

// Report summarizes one resolver pass
type Report struct {
	Hits  []Hit
	Ended bool // this pass moved the game to Ended
}

// Resolver applies contact effects and end conditions to the game state
// Not safe for concurrent use; the frame task owns it
type Resolver struct {
	Field         spawn.Field
	ContactRadius float64
	rng           *rand.Rand
}

// NewResolver creates a resolver drawing benign awards from rng
func NewResolver(field spawn.Field, contactRadius float64, rng *rand.Rand) *Resolver {
	return &Resolver{Field: field, ContactRadius: contactRadius, rng: rng}
}

// Resolve runs one collision pass, no-op unless the game is running
func (r *Resolver) Resolve(s *State, body *rig.Body, obstacles []*spawn.Obstacle) Report {
	var rep Report
	if !s.Running() {
		return rep
	}

	chest := body.ChestPoint()
	for _, o := range obstacles {
		if o.Collided {
			continue
		}
		// Swept along the last step so fast obstacles cannot tunnel through
		from, to := o.Trail()
		d := vmath.SegmentDist(chest, from, to)
		if d >= r.ContactRadius {
			continue
		}
		o.Collided = true
		e := o.Kind.Effect(r.rng)
		s.Energy += e.Energy
		s.Score += e.Score
		rep.Hits = append(rep.Hits, Hit{ObstacleID: o.ID, Kind: o.Kind, Effect: e, Distance: d})
	}

	rep.Ended = r.CheckEnd(s, body)
	return rep
}

// CheckEnd evaluates the terminal conditions, bounds first
// Returns true only on the transition into Ended
func (r *Resolver) CheckEnd(s *State, body *rig.Body) bool {
	root := body.Root()
	if !r.Field.Contains(root[0], root[2]) {
		return s.End(OutOfBounds)
	}
	if s.Energy <= 0 {
		return s.End(EnergyExhausted)
	}
	return false
}
