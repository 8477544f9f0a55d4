package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler drives a session from two independent tasks:
// the frame task on a fixed tick and the spawn task on the spawn timer
type Scheduler struct {
	session       *Session
	frameInterval time.Duration
	spawnInterval time.Duration
	log           zerolog.Logger

	// Signals the UI that a new snapshot is ready, coalesced
	updated chan struct{}

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	running  atomic.Bool
	stopOnce sync.Once

	frameCount atomic.Uint64
	spawnCount atomic.Uint64
}

// NewScheduler creates a stopped scheduler for session
func NewScheduler(session *Session, frameInterval, spawnInterval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		session:       session,
		frameInterval: frameInterval,
		spawnInterval: spawnInterval,
		log:           log.With().Str("component", "scheduler").Logger(),
		updated:       make(chan struct{}, 1),
	}
}

// Updates receives a signal after each frame tick
func (cs *Scheduler) Updates() <-chan struct{} {
	return cs.updated
}

// Start launches both tasks; they stop on ctx cancellation or Stop
func (cs *Scheduler) Start(ctx context.Context) {
	if !cs.running.CompareAndSwap(false, true) {
		return
	}
	ctx, cs.cancel = context.WithCancel(ctx)

	cs.wg.Add(2)
	Go(func() { cs.frameLoop(ctx) })
	Go(func() { cs.spawnLoop(ctx) })

	cs.log.Info().Dur("frame", cs.frameInterval).Dur("spawn", cs.spawnInterval).Msg("Scheduler started")
}

// Stop halts both tasks and waits for them to exit
func (cs *Scheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.Load() {
			cs.cancel()
			cs.wg.Wait()
			cs.running.Store(false)
			cs.log.Info().Uint64("frames", cs.frameCount.Load()).
				Uint64("spawns", cs.spawnCount.Load()).Msg("Scheduler stopped")
		}
	})
}

// FrameCount returns the number of frame ticks run
func (cs *Scheduler) FrameCount() uint64 {
	return cs.frameCount.Load()
}

func (cs *Scheduler) frameLoop(ctx context.Context) {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cs.session.Tick(ctx)
			cs.frameCount.Add(1)

			select {
			case cs.updated <- struct{}{}:
			default:
			}
		}
	}
}

func (cs *Scheduler) spawnLoop(ctx context.Context) {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.spawnInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cs.session.SpawnTick(ctx) {
				cs.spawnCount.Add(1)
			}
		}
	}
}
