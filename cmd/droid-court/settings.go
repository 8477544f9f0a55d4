package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/droid-court/audio"
	"github.com/lixenwraith/droid-court/config"
	"github.com/lixenwraith/droid-court/engine"
	"github.com/lixenwraith/droid-court/input"
	"github.com/lixenwraith/droid-court/rig"
	"github.com/lixenwraith/droid-court/spawn"
)

// sessionSettings maps the loaded configuration onto engine settings
func sessionSettings(cfg config.Config) engine.Settings {
	return engine.Settings{
		Dimensions: rig.Dimensions{
			ArmHeight: cfg.Droid.ArmHeight,
			BodyWidth: cfg.Droid.BodyWidth,
		},
		Spawn: spawn.Config{
			Field: spawn.Field{
				HalfWidth:  cfg.Court.HalfWidth,
				HalfLength: cfg.Court.HalfLength,
				SpawnGap:   cfg.Court.SpawnGap,
				FarBand:    cfg.Court.FarBand,
			},
			SpeedFloor:   cfg.Spawn.SpeedFloor,
			SpeedSpread:  cfg.Spawn.SpeedSpread,
			BenignChance: cfg.Spawn.BenignChance,
		},
		InitialEnergy:   cfg.Game.InitialEnergy,
		MoveCost:        cfg.Game.MoveCost,
		SpawnTarget:     cfg.Spawn.Target,
		BenignRatio:     cfg.Spawn.BenignRatio,
		DifficultyStart: cfg.Difficulty.Start,
		RampInterval:    cfg.Difficulty.RampInterval,
		ActionQueue:     cfg.Engine.ActionQueue,
		Seed:            cfg.Game.Seed,
	}
}

func audioConfig(cfg config.Config) audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}

// helpEntries are the actions listed on the help line, in display order
var helpEntries = []struct {
	label   string
	actions []input.Action
}{
	{"move", []input.Action{input.MoveForward, input.MoveBackward}},
	{"turn", []input.Action{input.TurnLeft, input.TurnRight}},
	{"head", []input.Action{input.HeadLeft, input.HeadRight}},
	{"tilt", []input.Action{input.TiltForward, input.TiltBack}},
	{"arms", []input.Action{input.ArmsUp, input.ArmsDown}},
	{"camera", []input.Action{input.ToggleCamera}},
	{"pause", []input.Action{input.TogglePause}},
	{"reset", []input.Action{input.Reset}},
	{"quit", []input.Action{input.Quit}},
}

// helpLine renders the bottom help row from the active bindings
func helpLine(kt *input.KeyTable) string {
	parts := make([]string, 0, len(helpEntries))
	for _, e := range helpEntries {
		var keys []string
		for _, a := range e.actions {
			if b := kt.Bindings(a); len(b) > 0 {
				keys = append(keys, b[0])
			}
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", strings.Join(keys, "/"), e.label))
	}
	return strings.Join(parts, "  ")
}
