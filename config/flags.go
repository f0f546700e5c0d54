package config

import (
	"flag"
	"strings"

	"github.com/lixenwraith/tilechase/lang"
)

// Flags are the command-line overrides. Only flags the user actually set
// replace file values
type Flags struct {
	fs *flag.FlagSet

	Path    string
	width   int
	players int
	speed   string
	lang    string
	seed    uint64
	mute    bool
	debug   bool
	records string
	pace    string
	corrupt bool
}

// RegisterFlags defines the game's flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "tilechase.yaml", "YAML config file")
	fs.IntVar(&f.width, "width", 0, "grid width (10-30)")
	fs.IntVar(&f.players, "players", 0, "number of players (1-2)")
	fs.StringVar(&f.speed, "speed", "", "speed profile: slowest, slower, normal, faster, fastest")
	fs.StringVar(&f.lang, "lang", "", "label language: "+strings.Join(lang.Names(), ", "))
	fs.Uint64Var(&f.seed, "seed", 0, "random seed, 0 for time-based")
	fs.BoolVar(&f.mute, "mute", false, "start with sound off")
	fs.BoolVar(&f.debug, "debug", false, "write a debug log under the log dir")
	fs.StringVar(&f.records, "records", "", "records database path, \"off\" to disable")
	fs.StringVar(&f.pace, "runner-pace", "", "runner cadence: distance or score")
	fs.BoolVar(&f.corrupt, "corrupt", false, "the nommer corrupts a tile for every target it eats")
	return f
}

// Apply copies every explicitly set flag onto cfg and re-normalizes it
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.width
		case "players":
			cfg.Players = f.players
		case "speed":
			cfg.Speed = f.speed
		case "lang":
			cfg.Language = f.lang
		case "seed":
			cfg.Seed = f.seed
		case "mute":
			cfg.Audio.Muted = f.mute
		case "debug":
			cfg.Log.Enabled = f.debug
			if f.debug && cfg.Log.Level == "" {
				cfg.Log.Level = "debug"
			}
		case "records":
			if strings.EqualFold(f.records, "off") {
				cfg.Records.Enabled = false
			} else {
				cfg.Records.Enabled = true
				cfg.Records.Path = f.records
			}
		case "runner-pace":
			cfg.RunnerPace = f.pace
		case "corrupt":
			cfg.NommerCorrupts = f.corrupt
		}
	})
	cfg.Normalize()
}
