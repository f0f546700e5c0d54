// Package config loads game settings from a YAML file and command-line flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilechase/audio"
	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/lang"
	"github.com/lixenwraith/tilechase/logger"
	"github.com/lixenwraith/tilechase/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

const DefaultRecordsPath = "tilechase.db"

type Config struct {
	Width          int                               `yaml:"width"`
	Players        int                               `yaml:"players"`
	Language       string                            `yaml:"language"`
	Speed          string                            `yaml:"speed"`
	Seed           uint64                            `yaml:"seed"`
	NommerCorrupts bool                              `yaml:"nommer_corrupts"`
	RunnerPace     string                            `yaml:"runner_pace"`
	Audio          AudioConfig                       `yaml:"audio"`
	Records        RecordsConfig                     `yaml:"records"`
	Log            LogConfig                         `yaml:"log"`
	Profiles       map[string]parameter.SpeedProfile `yaml:"profiles,omitempty"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Muted   bool    `yaml:"muted"`
	Volume  float64 `yaml:"volume"`
}

type RecordsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`
}

func Defaults() Config {
	return Config{
		Width:      parameter.DefaultWidth,
		Players:    parameter.DefaultPlayers,
		Language:   "eng",
		Speed:      parameter.DefaultSpeedProfile,
		RunnerPace: parameter.RunnerPaceDistance,
		Audio:      AudioConfig{Enabled: true, Volume: parameter.AudioDefaultVolume},
		Records:    RecordsConfig{Enabled: true, Path: DefaultRecordsPath},
		Log:        LogConfig{Dir: logger.DefaultDir, Format: "text"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.Normalize()
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills blanks and clamps the width into range
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	if c.Width == 0 {
		c.Width = parameter.DefaultWidth
	}
	c.Width = min(max(c.Width, parameter.MinWidth), parameter.MaxWidth)
	if c.Players == 0 {
		c.Players = parameter.DefaultPlayers
	}
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if c.Language == "" {
		c.Language = "eng"
	}
	c.Speed = strings.ToLower(strings.TrimSpace(c.Speed))
	if c.Speed == "" {
		c.Speed = parameter.DefaultSpeedProfile
	}
	c.RunnerPace = strings.ToLower(strings.TrimSpace(c.RunnerPace))
	if c.RunnerPace == "" {
		c.RunnerPace = parameter.RunnerPaceDistance
	}
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	if c.Records.Path == "" {
		c.Records.Path = DefaultRecordsPath
	}
	if c.Log.Dir == "" {
		c.Log.Dir = logger.DefaultDir
	}
}

func (c Config) Validate() error {
	c.Normalize()
	if c.Players < 1 || c.Players > parameter.MaxPlayers {
		return fmt.Errorf("%w: players %d must be in [1, %d]", ErrInvalid, c.Players, parameter.MaxPlayers)
	}
	if !slices.Contains(lang.Names(), c.Language) {
		return fmt.Errorf("%w: language %q, want one of %v", ErrInvalid, c.Language, lang.Names())
	}
	for name, p := range c.Profiles {
		if p.LB <= 0 || p.UB < p.LB {
			return fmt.Errorf("%w: profile %q needs 0 < lb <= ub", ErrInvalid, name)
		}
		if p.FullBand <= 0 || p.FullBand > 1 {
			return fmt.Errorf("%w: profile %q full_band must be in (0, 1]", ErrInvalid, name)
		}
	}
	if _, err := c.Profile(); err != nil {
		return err
	}
	if c.RunnerPace != parameter.RunnerPaceDistance && c.RunnerPace != parameter.RunnerPaceScore {
		return fmt.Errorf("%w: runner_pace %q, want %q or %q", ErrInvalid, c.RunnerPace,
			parameter.RunnerPaceDistance, parameter.RunnerPaceScore)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ProfileNames lists the built-in profiles slowest first, then custom ones by name
func (c Config) ProfileNames() []string {
	names := parameter.SpeedProfileNames()
	var custom []string
	for name := range c.Profiles {
		if _, builtin := parameter.SpeedProfiles[name]; !builtin {
			custom = append(custom, name)
		}
	}
	slices.Sort(custom)
	return append(names, custom...)
}

// Profile resolves Speed; custom profiles shadow built-in ones
func (c Config) Profile() (parameter.SpeedProfile, error) {
	if p, ok := c.Profiles[c.Speed]; ok {
		return p, nil
	}
	if p, ok := parameter.SpeedProfiles[c.Speed]; ok {
		return p, nil
	}
	return parameter.SpeedProfile{}, fmt.Errorf("%w: speed %q, want one of %v", ErrInvalid, c.Speed, c.ProfileNames())
}

// GameOptions builds the engine options; randomness, clock and stats are
// left for the caller
func (c Config) GameOptions() (engine.Options, error) {
	l, err := lang.Lookup(c.Language)
	if err != nil {
		return engine.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	p, err := c.Profile()
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Width:          c.Width,
		Players:        c.Players,
		Language:       l,
		Profile:        p,
		NommerCorrupts: c.NommerCorrupts,
		RunnerPace:     engine.PaceByName(c.RunnerPace),
	}, nil
}

func (c Config) AudioConfig() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.Volume = c.Audio.Volume
	return a
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Enabled: c.Log.Enabled,
		Level:   c.Log.Level,
		Dir:     c.Log.Dir,
		Format:  c.Log.Format,
	}
}
