package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumTotal(t *testing.T, agg metricdata.Aggregation) int64 {
	t.Helper()
	sum, ok := agg.(metricdata.Sum[int64])
	require.True(t, ok, "aggregation is %T", agg)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter(InstrumentationName))
	require.NoError(t, err)

	ctx := context.Background()
	m.Frame(ctx, 299)
	m.Frame(ctx, 290)
	m.Spawned(ctx, "benign")
	m.Spawned(ctx, "harmful")
	m.Spawned(ctx, "harmful")
	m.Hit(ctx, "harmful")
	m.Move(ctx)
	m.Ended(ctx, "energy exhausted")

	data := collect(t, reader)
	assert.Equal(t, int64(2), sumTotal(t, data["game.frames"]))
	assert.Equal(t, int64(3), sumTotal(t, data["game.obstacles.spawned"]))
	assert.Equal(t, int64(1), sumTotal(t, data["game.obstacles.hits"]))
	assert.Equal(t, int64(1), sumTotal(t, data["game.moves"]))
	assert.Equal(t, int64(1), sumTotal(t, data["game.ended"]))

	gauge, ok := data["game.energy"].(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(290), gauge.DataPoints[0].Value)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.Frame(ctx, 1)
		m.Spawned(ctx, "benign")
		m.Hit(ctx, "benign")
		m.Move(ctx)
		m.Ended(ctx, "out of bounds")
	})
}

func TestProvider_Disabled(t *testing.T) {
	p, err := New(Config{Enabled: false})
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	m, err := NewMetrics(p.Meter(InstrumentationName))
	require.NoError(t, err)
	m.Frame(context.Background(), 10)

	assert.NoError(t, p.Flush(context.Background()))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_EnabledRequiresWriter(t *testing.T) {
	_, err := New(Config{Enabled: true, ServiceName: "droid-court"})
	assert.Error(t, err)
}

func TestProvider_ExportsToWriter(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(Config{Enabled: true, ServiceName: "droid-court", Interval: time.Hour, Writer: &buf})
	require.NoError(t, err)

	m, err := NewMetrics(p.Meter(InstrumentationName))
	require.NoError(t, err)
	m.Move(context.Background())

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "game.moves")
}
