package spawn

import (
	"math"
	"math/rand"
	"sync"

	"github.com/lixenwraith/droid-court/parameter"
)

// Config parameterizes obstacle placement and speed
type Config struct {
	Field        Field
	Altitude     float64 // flight height of obstacle centers
	SpeedFloor   float64
	SpeedSpread  float64
	BenignChance float64
}

// DefaultConfig returns the reference spawner setup flying at the given altitude
func DefaultConfig(altitude float64) Config {
	return Config{
		Field:        DefaultField(),
		Altitude:     altitude,
		SpeedFloor:   parameter.ObstacleSpeedFloor,
		SpeedSpread:  parameter.ObstacleSpeedSpread,
		BenignChance: parameter.BenignChance,
	}
}

// BenignQuota returns the number of benign spawns required for a run of target obstacles
func BenignQuota(target int, ratio float64) int {
	return int(math.Round(float64(target) * ratio))
}

// ChooseKind applies the quota policy to a uniform roll in [0, 1)
// Once the remaining budget equals the remaining benign quota every spawn is benign,
// so a full run hits the quota exactly
func ChooseKind(counts Counts, target, quota int, roll, chance float64) Kind {
	remainingQuota := quota - counts.Benign
	if remainingQuota <= 0 {
		return Harmful
	}
	if target-counts.Total() <= remainingQuota {
		return Benign
	}
	if roll < chance {
		return Benign
	}
	return Harmful
}

// Spawner creates and recycles obstacles
// Safe for concurrent use: the spawn timer and the frame task share it
type Spawner struct {
	mu         sync.Mutex
	rng        *rand.Rand
	cfg        Config
	difficulty float64
	nextID     uint64
}

// NewSpawner creates a spawner with a deterministic random source
func NewSpawner(cfg Config, seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		nextID: 1,
	}
}

// Field returns the court the spawner places obstacles around
func (s *Spawner) Field() Field {
	return s.cfg.Field
}

// Spawn creates the next obstacle for a run, ok=false once target is reached
func (s *Spawner) Spawn(counts Counts, target, quota int) (*Obstacle, bool) {
	if counts.Total() >= target {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := &Obstacle{
		ID:   s.nextID,
		Kind: ChooseKind(counts, target, quota, s.rng.Float64(), s.cfg.BenignChance),
	}
	s.nextID++
	s.place(o)
	o.Speed = s.rollSpeed()
	return o, true
}

// Reposition recycles an obstacle that crossed the near edge back into the spawn band
func (s *Spawner) Reposition(o *Obstacle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.place(o)
	o.Speed = s.rollSpeed()
	o.Collided = false
	o.Passes++
}

// SetDifficulty raises the speed lower bound; lower values are ignored
func (s *Spawner) SetDifficulty(d float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d <= s.difficulty {
		return false
	}
	s.difficulty = d
	return true
}

// Difficulty returns the current difficulty
func (s *Spawner) Difficulty() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

// SpeedRange returns the half-open speed interval for the current difficulty
func (s *Spawner) SpeedRange() (lo, hi float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo = s.cfg.SpeedFloor + s.difficulty
	return lo, lo + s.cfg.SpeedSpread
}

// place rolls a grid-aligned position inside the spawn band, caller holds mu
func (s *Spawner) place(o *Obstacle) {
	f := s.cfg.Field
	o.X = math.Round(-f.HalfWidth + s.rng.Float64()*2*f.HalfWidth)
	o.Z = math.Round(f.SpawnZMin() + s.rng.Float64()*f.FarBand)
	o.Y = s.cfg.Altitude
}

// rollSpeed draws from [floor+difficulty, floor+difficulty+spread), caller holds mu
func (s *Spawner) rollSpeed() float64 {
	return s.cfg.SpeedFloor + s.difficulty + s.rng.Float64()*s.cfg.SpeedSpread
}
