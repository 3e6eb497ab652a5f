package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-collinear/pkg/board"
	"github.com/IlikeChooros/go-collinear/pkg/solver"
)

// Settings of one solve, read from a yaml file and/or command line flags
type Config struct {
	M         int           `yaml:"m"`
	N         int           `yaml:"n"`
	Threads   int           `yaml:"threads"`
	Movetime  time.Duration `yaml:"movetime"`
	MaxStates uint64        `yaml:"max_states"`
	// Computed states between two progress reports, 0 disables them
	ProgressInterval uint64 `yaml:"progress_interval"`
	LogLevel         string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		M:                3,
		N:                3,
		Threads:          1,
		ProgressInterval: 0,
		LogLevel:         "info",
	}
}

// Bind the config fields to flags, using the current values as defaults
func (c *Config) RegisterFlags(f *pflag.FlagSet) {
	f.IntVarP(&c.M, "rows", "m", c.M, "Number of rows of the board.")
	f.IntVarP(&c.N, "cols", "n", c.N, "Number of columns of the board.")
	f.IntVar(&c.Threads, "threads", c.Threads, "Goroutines evaluating the first moves, 1 keeps the search single threaded.")
	f.DurationVar(&c.Movetime, "movetime", c.Movetime, "Abort the solve after this long, 0 means no limit.")
	f.Uint64Var(&c.MaxStates, "max-states", c.MaxStates, "Abort the solve after computing this many states, 0 means no limit.")
	f.Uint64Var(&c.ProgressInterval, "progress", c.ProgressInterval, "Report progress every N computed states, 0 disables it.")
	f.StringVar(&c.LogLevel, "log.level", c.LogLevel, "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
}

// Read the yaml file at 'path' over the current values
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Read the yaml file at 'path', flags set explicitly on 'f' keep precedence
func (c *Config) LoadWithFlags(path string, f *pflag.FlagSet) error {
	changed := map[string]string{}
	f.Visit(func(flag *pflag.Flag) {
		changed[flag.Name] = flag.Value.String()
	})

	if err := c.Load(path); err != nil {
		return err
	}
	for name, value := range changed {
		if err := f.Set(name, value); err != nil {
			return errors.Wrapf(err, "reapply flag %s", name)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if err := board.Validate(c.M, c.N); err != nil {
		return err
	}
	if c.Threads < 1 {
		return errors.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	if c.Movetime < 0 {
		return errors.Errorf("movetime must not be negative, got %s", c.Movetime)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Solver limits described by the config
func (c *Config) Limits() *solver.Limits {
	limits := solver.DefaultLimits().SetThreads(c.Threads)
	if c.Movetime > 0 {
		limits.SetMovetime(int(c.Movetime.Milliseconds()))
	}
	if c.MaxStates > 0 {
		limits.SetStates(c.MaxStates)
	}
	return limits
}
