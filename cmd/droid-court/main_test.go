package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/droid-court/config"
	"github.com/lixenwraith/droid-court/engine"
	"github.com/lixenwraith/droid-court/input"
	"github.com/lixenwraith/droid-court/scoreboard"
)

func TestSessionSettingsFromDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := sessionSettings(cfg)
	want := engine.DefaultSettings()

	if got.Dimensions != want.Dimensions {
		t.Errorf("dimensions = %+v, want %+v", got.Dimensions, want.Dimensions)
	}
	if got.Spawn.Field != want.Spawn.Field {
		t.Errorf("field = %+v, want %+v", got.Spawn.Field, want.Spawn.Field)
	}
	if got.InitialEnergy != want.InitialEnergy || got.MoveCost != want.MoveCost {
		t.Errorf("energy/cost = %d/%d, want %d/%d", got.InitialEnergy, got.MoveCost, want.InitialEnergy, want.MoveCost)
	}
	if got.SpawnTarget != want.SpawnTarget || got.BenignRatio != want.BenignRatio {
		t.Errorf("target/ratio = %d/%v", got.SpawnTarget, got.BenignRatio)
	}
	if got.Spawn.BenignChance != want.Spawn.BenignChance {
		t.Errorf("benign chance = %v, want %v", got.Spawn.BenignChance, want.Spawn.BenignChance)
	}
}

func TestHelpLineFollowsBindings(t *testing.T) {
	kt := input.DefaultKeyTable()
	line := helpLine(kt)
	for _, want := range []string{"Up/Down move", "space pause", "v camera"} {
		if !strings.Contains(line, want) {
			t.Errorf("help %q missing %q", line, want)
		}
	}

	kt, err := input.LoadKeyTable(map[string]string{"p": "toggle_pause", "space": "none", "v": "none"})
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}
	line = helpLine(kt)
	if !strings.Contains(line, "p pause") {
		t.Errorf("rebound pause missing from %q", line)
	}
	if strings.Contains(line, "camera") {
		t.Errorf("unbound camera still listed in %q", line)
	}
}

func TestPrintScores(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	if err := printScores(ctx, &buf, nil, 5); err == nil {
		t.Error("expected error with scoreboard disabled")
	}

	store, err := scoreboard.Open("", zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := printScores(ctx, &buf, store, 5); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "no runs recorded") {
		t.Errorf("empty table = %q", buf.String())
	}

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, score := range []int{7, 42} {
		run := scoreboard.Run{StartedAt: start, EndedAt: start.Add(90 * time.Second), Score: score, Reason: "energy exhausted"}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(ctx, &buf, store, 5); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "1") || !strings.Contains(lines[1], "42") || !strings.Contains(lines[1], "1m30s") {
		t.Errorf("first row = %q", lines[1])
	}
}
