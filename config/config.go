package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/droid-court/parameter"
)

// FileName is the config file base name searched in the config dir
const FileName = "droid-court"

// EnvPrefix prefixes environment overrides, e.g. DROIDCOURT_GAME_SEED
const EnvPrefix = "DROIDCOURT"

type CourtConfig struct {
	HalfWidth  float64 `mapstructure:"halfWidth"`
	HalfLength float64 `mapstructure:"halfLength"`
	SpawnGap   float64 `mapstructure:"spawnGap"`
	FarBand    float64 `mapstructure:"farBand"`
}

type DroidConfig struct {
	ArmHeight float64 `mapstructure:"armHeight"`
	BodyWidth float64 `mapstructure:"bodyWidth"`
}

type GameConfig struct {
	InitialEnergy int   `mapstructure:"initialEnergy"`
	MoveCost      int   `mapstructure:"moveCost"`
	Seed          int64 `mapstructure:"seed"` // 0 seeds from the clock
}

type SpawnConfig struct {
	Target       int           `mapstructure:"target"`
	BenignRatio  float64       `mapstructure:"benignRatio"`
	BenignChance float64       `mapstructure:"benignChance"`
	Interval     time.Duration `mapstructure:"interval"`
	SpeedFloor   float64       `mapstructure:"speedFloor"`
	SpeedSpread  float64       `mapstructure:"speedSpread"`
}

type DifficultyConfig struct {
	Start        float64       `mapstructure:"start"`
	RampInterval time.Duration `mapstructure:"rampInterval"` // 0 disables the ramp
}

type EngineConfig struct {
	FrameInterval time.Duration `mapstructure:"frameInterval"`
	ActionQueue   int           `mapstructure:"actionQueue"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Dir    string `mapstructure:"dir"`
	Pretty bool   `mapstructure:"pretty"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type ScoreboardConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Top     int    `mapstructure:"top"`
}

type TelemetryConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Path     string        `mapstructure:"path"`
	Interval time.Duration `mapstructure:"interval"`
}

// Config is the full typed configuration
type Config struct {
	Court      CourtConfig      `mapstructure:"court"`
	Droid      DroidConfig      `mapstructure:"droid"`
	Game       GameConfig       `mapstructure:"game"`
	Spawn      SpawnConfig      `mapstructure:"spawn"`
	Difficulty DifficultyConfig `mapstructure:"difficulty"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Log        LogConfig        `mapstructure:"log"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Scoreboard ScoreboardConfig `mapstructure:"scoreboard"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`

	// Keys maps key names to action names, merged over the default bindings
	Keys map[string]string `mapstructure:"keys"`

	// File is the config file used, empty when running on defaults
	File string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("court.halfWidth", parameter.CourtHalfWidth)
	v.SetDefault("court.halfLength", parameter.CourtHalfLength)
	v.SetDefault("court.spawnGap", parameter.SpawnGap)
	v.SetDefault("court.farBand", parameter.SpawnFarBand)

	v.SetDefault("droid.armHeight", parameter.DroidArmHeight)
	v.SetDefault("droid.bodyWidth", parameter.DroidBodyWidth)

	v.SetDefault("game.initialEnergy", parameter.InitialEnergy)
	v.SetDefault("game.moveCost", parameter.MoveEnergyCost)
	v.SetDefault("game.seed", 0)

	v.SetDefault("spawn.target", parameter.SpawnTarget)
	v.SetDefault("spawn.benignRatio", parameter.BenignRatio)
	v.SetDefault("spawn.benignChance", parameter.BenignChance)
	v.SetDefault("spawn.interval", parameter.SpawnInterval)
	v.SetDefault("spawn.speedFloor", parameter.ObstacleSpeedFloor)
	v.SetDefault("spawn.speedSpread", parameter.ObstacleSpeedSpread)

	v.SetDefault("difficulty.start", 0.0)
	v.SetDefault("difficulty.rampInterval", parameter.DifficultyRampInterval)

	v.SetDefault("engine.frameInterval", parameter.FrameInterval)
	v.SetDefault("engine.actionQueue", parameter.ActionQueueSize)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.pretty", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)

	v.SetDefault("scoreboard.enabled", true)
	v.SetDefault("scoreboard.path", "./droid-court.db")
	v.SetDefault("scoreboard.top", 5)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.path", "./logs/metrics.jsonl")
	v.SetDefault("telemetry.interval", 10*time.Second)

	v.SetDefault("keys", map[string]string{})
}

// Load reads droid-court.toml from dir (optional), applies env overrides and defaults
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Court.HalfWidth > 0 && c.Court.HalfLength > 0, "court: half extents must be positive")
	check(c.Court.SpawnGap >= 0 && c.Court.FarBand > 0, "court: spawn band must be non-empty")
	check(c.Droid.ArmHeight > 0 && c.Droid.BodyWidth > 0, "droid: dimensions must be positive")
	check(c.Game.InitialEnergy > 0, "game: initialEnergy must be positive, got %d", c.Game.InitialEnergy)
	check(c.Game.MoveCost >= 0, "game: moveCost must not be negative")
	check(c.Spawn.Target >= 0, "spawn: target must not be negative")
	check(c.Spawn.BenignRatio >= 0 && c.Spawn.BenignRatio <= 1, "spawn: benignRatio %v outside [0, 1]", c.Spawn.BenignRatio)
	check(c.Spawn.BenignChance >= 0 && c.Spawn.BenignChance <= 1, "spawn: benignChance %v outside [0, 1]", c.Spawn.BenignChance)
	check(c.Spawn.Interval > 0, "spawn: interval must be positive")
	check(c.Spawn.SpeedFloor >= 0, "spawn: speedFloor must not be negative")
	check(c.Spawn.SpeedSpread > 0, "spawn: speedSpread must be positive")
	check(c.Difficulty.Start >= 0, "difficulty: start must not be negative")
	check(c.Difficulty.RampInterval >= 0, "difficulty: rampInterval must not be negative")
	check(c.Engine.FrameInterval > 0, "engine: frameInterval must be positive")
	check(c.Engine.ActionQueue > 0, "engine: actionQueue must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio: volume %v outside [0, 1]", c.Audio.Volume)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
