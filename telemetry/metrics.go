package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentationName scopes the game meters
const InstrumentationName = "github.com/lixenwraith/droid-court"

// Metrics holds the game instruments
// A nil *Metrics is valid and records nothing
type Metrics struct {
	frames  metric.Int64Counter
	spawned metric.Int64Counter
	hits    metric.Int64Counter
	moves   metric.Int64Counter
	games   metric.Int64Counter
	energy  metric.Int64ObservableGauge

	lastEnergy atomic.Int64
}

// NewMetrics registers the game instruments on m
func NewMetrics(m metric.Meter) (*Metrics, error) {
	g := &Metrics{}
	var err error

	if g.frames, err = m.Int64Counter("game.frames",
		metric.WithDescription("Frames ticked")); err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}
	if g.spawned, err = m.Int64Counter("game.obstacles.spawned",
		metric.WithDescription("Obstacles spawned by kind")); err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}
	if g.hits, err = m.Int64Counter("game.obstacles.hits",
		metric.WithDescription("Obstacle contacts by kind")); err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	if g.moves, err = m.Int64Counter("game.moves",
		metric.WithDescription("Accepted movement actions")); err != nil {
		return nil, fmt.Errorf("creating moves counter: %w", err)
	}
	if g.games, err = m.Int64Counter("game.ended",
		metric.WithDescription("Games ended by reason")); err != nil {
		return nil, fmt.Errorf("creating ended counter: %w", err)
	}

	if g.energy, err = m.Int64ObservableGauge("game.energy",
		metric.WithDescription("Energy at the last frame")); err != nil {
		return nil, fmt.Errorf("creating energy gauge: %w", err)
	}
	if _, err = m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(g.energy, g.lastEnergy.Load())
		return nil
	}, g.energy); err != nil {
		return nil, fmt.Errorf("registering energy callback: %w", err)
	}

	return g, nil
}

// Frame records one frame tick and the energy reading
func (g *Metrics) Frame(ctx context.Context, energy int) {
	if g == nil {
		return
	}
	g.frames.Add(ctx, 1)
	g.lastEnergy.Store(int64(energy))
}

// Spawned records one spawned obstacle
func (g *Metrics) Spawned(ctx context.Context, kind string) {
	if g == nil {
		return
	}
	g.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// Hit records one obstacle contact
func (g *Metrics) Hit(ctx context.Context, kind string) {
	if g == nil {
		return
	}
	g.hits.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// Move records one accepted movement action
func (g *Metrics) Move(ctx context.Context) {
	if g == nil {
		return
	}
	g.moves.Add(ctx, 1)
}

// Ended records one finished game
func (g *Metrics) Ended(ctx context.Context, reason string) {
	if g == nil {
		return
	}
	g.games.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
