package spawn

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/droid-court/parameter"
)

// Kind tags an obstacle's effect on contact
type Kind uint8

const (
	Harmful Kind = iota
	Benign
)

func (k Kind) String() string {
	switch k {
	case Benign:
		return "benign"
	case Harmful:
		return "harmful"
	}
	return "unknown"
}

// Effect is the energy and score change produced by one contact
type Effect struct {
	Energy int
	Score  int
}

// Effect resolves the contact outcome for this kind
// Benign splits the award pool between points and energy; harmful costs a fixed penalty
func (k Kind) Effect(rng *rand.Rand) Effect {
	switch k {
	case Benign:
		points := rng.Intn(parameter.BenignAwardPool)
		return Effect{Energy: parameter.BenignAwardPool - points, Score: points}
	case Harmful:
		return Effect{Energy: -parameter.HarmfulEnergyPenalty}
	}
	return Effect{}
}

// Obstacle is a flying object crossing the court toward -Z
type Obstacle struct {
	ID       uint64
	Kind     Kind
	X, Y, Z  float64
	Speed    float64 // units per frame
	Collided bool    // set on first contact, cleared on reposition
	Passes   int     // completed crossings
}

// Step advances the obstacle one frame
func (o *Obstacle) Step() {
	o.Z -= o.Speed
}

// Trail returns the start and end of the path covered by the last step
func (o *Obstacle) Trail() (from, to mgl64.Vec3) {
	return mgl64.Vec3{o.X, o.Y, o.Z + o.Speed}, mgl64.Vec3{o.X, o.Y, o.Z}
}

// Counts tracks spawned obstacles per kind
type Counts struct {
	Benign  int
	Harmful int
}

// Total returns all obstacles spawned so far
func (c Counts) Total() int {
	return c.Benign + c.Harmful
}

func (c *Counts) add(k Kind) {
	if k == Benign {
		c.Benign++
	} else {
		c.Harmful++
	}
}
