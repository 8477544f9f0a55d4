package engine

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/droid-court/game"
	"github.com/lixenwraith/droid-court/input"
	"github.com/lixenwraith/droid-court/parameter"
	"github.com/lixenwraith/droid-court/rig"
	"github.com/lixenwraith/droid-court/scoreboard"
	"github.com/lixenwraith/droid-court/spawn"
	"github.com/lixenwraith/droid-court/telemetry"
)

// Cues plays sound cues for game events
type Cues interface {
	PlayBonus()
	PlayHit()
	PlayGameOver()
}

// Recorder persists finished runs
type Recorder interface {
	Record(ctx context.Context, run scoreboard.Run) error
}

// Settings are the per-game tuning values
type Settings struct {
	Dimensions      rig.Dimensions
	Spawn           spawn.Config // Altitude is derived from the droid's chest height
	InitialEnergy   int
	MoveCost        int
	SpawnTarget     int
	BenignRatio     float64
	DifficultyStart float64
	RampInterval    time.Duration // 0 disables the difficulty ramp
	ActionQueue     int
	Seed            int64 // 0 seeds from the clock
}

// DefaultSettings returns the reference game
func DefaultSettings() Settings {
	return Settings{
		Dimensions:    rig.DefaultDimensions(),
		Spawn:         spawn.DefaultConfig(0),
		InitialEnergy: parameter.InitialEnergy,
		MoveCost:      parameter.MoveEnergyCost,
		SpawnTarget:   parameter.SpawnTarget,
		BenignRatio:   parameter.BenignRatio,
		RampInterval:  parameter.DifficultyRampInterval,
		ActionQueue:   parameter.ActionQueueSize,
	}
}

// Options wires collaborators into a session; nil members are no-ops
type Options struct {
	Logger   zerolog.Logger
	Cues     Cues
	Recorder Recorder
	Metrics  *telemetry.Metrics
	Clock    Clock
}

// round is the spawn-side state of one game, shared with the spawn task
type round struct {
	fleet   *spawn.Fleet
	spawner *spawn.Spawner
	target  int
	quota   int
	ended   atomic.Bool
}

// Session is the application context: one droid, one court, one game at a time
// Tick and SpawnTick run from independent tasks; Push is safe from any goroutine
type Session struct {
	settings Settings
	log      zerolog.Logger
	cues     Cues
	recorder Recorder
	metrics  *telemetry.Metrics
	source   Clock

	inbox    chan input.Action
	quit     chan struct{}
	quitOnce sync.Once

	round atomic.Pointer[round]
	snap  atomic.Pointer[Snapshot]

	// Frame-side state, guarded by mu
	mu        sync.Mutex
	body      *rig.Body
	state     game.State
	resolver  *game.Resolver
	clock     *PausableClock
	frames    uint64
	hits      int
	games     int64
	baseSeed  int64
	seed      int64
	startedAt time.Time
}

// NewSession creates a session with a running game
func NewSession(settings Settings, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if settings.ActionQueue <= 0 {
		settings.ActionQueue = parameter.ActionQueueSize
	}

	s := &Session{
		settings: settings,
		log:      opts.Logger.With().Str("component", "engine").Logger(),
		cues:     opts.Cues,
		recorder: opts.Recorder,
		metrics:  opts.Metrics,
		source:   opts.Clock,
		inbox:    make(chan input.Action, settings.ActionQueue),
		quit:     make(chan struct{}),
		baseSeed: settings.Seed,
	}
	if s.baseSeed == 0 {
		s.baseSeed = opts.Clock.Now().UnixNano()
	}

	s.mu.Lock()
	s.newGame()
	s.publish()
	s.mu.Unlock()

	return s
}

// newGame replaces all per-game state, caller holds mu
func (s *Session) newGame() {
	s.seed = s.baseSeed + s.games
	s.games++

	s.body = rig.NewBody(s.settings.Dimensions)
	s.state = game.NewState(s.settings.InitialEnergy)
	s.resolver = game.NewResolver(s.settings.Spawn.Field, s.settings.Dimensions.ContactRadius(),
		rand.New(rand.NewSource(s.seed)))

	spawnCfg := s.settings.Spawn
	spawnCfg.Altitude = s.body.ChestPoint().Y()
	sp := spawn.NewSpawner(spawnCfg, s.seed^0x5eed)
	sp.SetDifficulty(s.settings.DifficultyStart)

	next := &round{
		fleet:   spawn.NewFleet(),
		spawner: sp,
		target:  s.settings.SpawnTarget,
		quota:   spawn.BenignQuota(s.settings.SpawnTarget, s.settings.BenignRatio),
	}
	if prev := s.round.Swap(next); prev != nil {
		prev.ended.Store(true)
	}

	s.clock = NewPausableClock(s.source)
	s.frames = 0
	s.hits = 0
	s.startedAt = s.source.Now()

	s.log.Info().Int64("seed", s.seed).Int("energy", s.state.Energy).
		Int("target", next.target).Int("quota", next.quota).Msg("Game started")
}

// ===== Input =====

// Push queues an action for the next frame, false if the inbox is full
func (s *Session) Push(a input.Action) bool {
	select {
	case s.inbox <- a:
		return true
	default:
		s.log.Warn().Stringer("action", a).Msg("Action dropped, inbox full")
		return false
	}
}

// Done is closed once a quit action has been processed or Close was called
func (s *Session) Done() <-chan struct{} {
	return s.quit
}

// Close signals quit; safe to call more than once
func (s *Session) Close() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// Reset starts a new game immediately
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newGame()
	s.publish()
}

var moveDirections = map[input.Action]rig.Direction{
	input.MoveForward:  rig.Forward,
	input.MoveBackward: rig.Backward,
	input.TurnLeft:     rig.Left,
	input.TurnRight:    rig.Right,
}

var poseSteps = map[input.Action]struct {
	name rig.DOFName
	dir  int
}{
	input.HeadLeft:    {rig.HeadRotation, 1},
	input.HeadRight:   {rig.HeadRotation, -1},
	input.TiltForward: {rig.BodyTilt, 1},
	input.TiltBack:    {rig.BodyTilt, -1},
	input.ArmsUp:      {rig.ArmScale, 1},
	input.ArmsDown:    {rig.ArmScale, -1},
}

// drain applies every queued action, caller holds mu
func (s *Session) drain(ctx context.Context) {
	for {
		select {
		case a := <-s.inbox:
			s.apply(ctx, a)
		default:
			return
		}
	}
}

// apply routes one action, caller holds mu
// Movement and pose actions only apply while running; an accepted move
// that exhausts energy or leaves the court ends the game at once
func (s *Session) apply(ctx context.Context, a input.Action) {
	switch a {
	case input.Quit:
		s.log.Info().Msg("Quit requested")
		s.Close()
	case input.Reset:
		s.log.Info().Int("score", s.state.Score).Msg("Game reset")
		s.newGame()
	case input.TogglePause:
		if !s.state.TogglePause() {
			return
		}
		if s.state.Paused() {
			s.clock.Pause()
		} else {
			s.clock.Resume()
		}
		s.log.Info().Stringer("phase", s.state.Phase).Msg("Phase changed")
	case input.ToggleCamera:
		s.state.ToggleCamera()
		s.log.Debug().Stringer("camera", s.state.Camera).Msg("Camera toggled")
	default:
		if !s.state.Running() {
			return
		}
		if dir, ok := moveDirections[a]; ok {
			s.body.Move(dir)
			s.state.ChargeMove(s.settings.MoveCost)
			s.metrics.Move(ctx)
			// End immediately so later actions in the same drain see Ended
			if s.resolver.CheckEnd(&s.state, s.body) {
				s.finish(ctx, s.round.Load())
			}
			return
		}
		if step, ok := poseSteps[a]; ok {
			if !s.body.AdjustDOF(step.name, step.dir) {
				s.log.Debug().Stringer("dof", step.name).Int("dir", step.dir).Msg("DOF at limit")
			}
		}
	}
}

// ===== Frame =====

// Tick runs one frame: actions, obstacle motion, collisions, snapshot
// Paused and ended games only process actions
func (s *Session) Tick(ctx context.Context) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drain(ctx)

	r := s.round.Load()
	if s.state.Running() {
		s.frames++
		s.ramp(r)
		r.fleet.Advance(r.spawner)

		rep := s.resolver.Resolve(&s.state, s.body, r.fleet.Snapshot())
		s.applyReport(ctx, rep)
		if rep.Ended {
			s.finish(ctx, r)
		}
	}

	s.metrics.Frame(ctx, s.state.Energy)
	return s.publish()
}

// ramp raises difficulty by one per RampInterval of game time, caller holds mu
func (s *Session) ramp(r *round) {
	if s.settings.RampInterval <= 0 {
		return
	}
	steps := math.Floor(float64(s.clock.Elapsed()) / float64(s.settings.RampInterval))
	level := s.settings.DifficultyStart + steps
	if r.spawner.SetDifficulty(level) {
		s.log.Info().Float64("difficulty", level).Msg("Difficulty raised")
	}
}

func (s *Session) applyReport(ctx context.Context, rep game.Report) {
	for _, h := range rep.Hits {
		s.hits++
		s.metrics.Hit(ctx, h.Kind.String())
		s.log.Debug().Uint64("obstacle", h.ObstacleID).Stringer("kind", h.Kind).
			Int("energy_delta", h.Effect.Energy).Int("score_delta", h.Effect.Score).
			Int("energy", s.state.Energy).Msg("Contact")

		if s.cues == nil {
			continue
		}
		if h.Kind == spawn.Benign {
			s.cues.PlayBonus()
		} else {
			s.cues.PlayHit()
		}
	}
}

// finish runs the end-of-game side effects once, caller holds mu
func (s *Session) finish(ctx context.Context, r *round) {
	r.ended.Store(true)
	s.clock.Pause()

	s.log.Info().Stringer("reason", s.state.Reason).Int("score", s.state.Score).
		Int("energy", s.state.Energy).Uint64("frames", s.frames).Msg("Game over")

	if s.cues != nil {
		s.cues.PlayGameOver()
	}
	s.metrics.Ended(ctx, s.state.Reason.String())

	if s.recorder == nil {
		return
	}
	run := scoreboard.Run{
		StartedAt:  s.startedAt,
		EndedAt:    s.source.Now(),
		Score:      s.state.Score,
		Energy:     s.state.Energy,
		Reason:     s.state.Reason.String(),
		Frames:     s.frames,
		Spawned:    r.fleet.Counts().Total(),
		Hits:       s.hits,
		Difficulty: r.spawner.Difficulty(),
		Seed:       s.seed,
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		s.log.Warn().Err(err).Msg("Failed to record run")
	}
}

// ===== Spawn =====

// SpawnTick adds one obstacle unless the target is reached or the game ended
// Runs while paused so the cap check keeps the count bounded
func (s *Session) SpawnTick(ctx context.Context) bool {
	r := s.round.Load()
	if r == nil || r.ended.Load() {
		return false
	}

	var spawned spawn.Obstacle
	_, ok := r.fleet.SpawnWith(func(c spawn.Counts) (*spawn.Obstacle, bool) {
		o, ok := r.spawner.Spawn(c, r.target, r.quota)
		if ok {
			spawned = *o
		}
		return o, ok
	})
	if !ok {
		return false
	}

	s.metrics.Spawned(ctx, spawned.Kind.String())
	s.log.Debug().Uint64("obstacle", spawned.ID).Stringer("kind", spawned.Kind).
		Float64("x", spawned.X).Float64("z", spawned.Z).Float64("speed", spawned.Speed).Msg("Spawned")
	return true
}

// ===== Snapshot =====

// Snapshot returns the most recently published frame
func (s *Session) Snapshot() *Snapshot {
	return s.snap.Load()
}

// publish copies the frame state for readers, caller holds mu
func (s *Session) publish() *Snapshot {
	r := s.round.Load()
	live := r.fleet.Snapshot()

	snap := &Snapshot{
		Frame:         s.frames,
		State:         s.state,
		Root:          s.body.Root(),
		Yaw:           s.body.Yaw(),
		Facing:        s.body.Facing(),
		Chest:         s.body.ChestPoint(),
		DOFs:          s.body.DOFs(),
		Obstacles:     make([]spawn.Obstacle, 0, max(len(live), parameter.SnapshotObstacleHint)),
		Counts:        r.fleet.Counts(),
		Target:        r.target,
		Difficulty:    r.spawner.Difficulty(),
		Elapsed:       s.clock.Elapsed(),
		Field:         s.settings.Spawn.Field,
		ContactRadius: s.settings.Dimensions.ContactRadius(),
		Hits:          s.hits,
	}
	snap.EyePos, snap.EyeDir = s.body.EyeView()
	for _, o := range live {
		snap.Obstacles = append(snap.Obstacles, *o)
	}

	s.snap.Store(snap)
	return snap
}
