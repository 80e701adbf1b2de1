// Package config loads the service configuration from an optional YAML
// file plus environment overrides.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/kkyr/fig"
)

const envPrefix = "PADVIEW"

type Server struct {
	Addr string `fig:"addr" default:":8080"`
}

type Monitoring struct {
	Enabled          bool   `fig:"enabled"`
	Port             int    `fig:"port" default:"6060"`
	URLPrefix        string `fig:"url_prefix"`
	MetricEnabled    bool   `fig:"metric" default:"true"`
	ProfilingEnabled bool   `fig:"pprof"`
}

type Input struct {
	// Backend selects the controller driver: auto, sdl, xinput or null.
	Backend string `fig:"backend" default:"auto"`
	// DeadZone selects the stick filter: independent, circular or none.
	DeadZone string `fig:"dead_zone" default:"independent"`
	// PollIntervalMS is the polling period in milliseconds.
	PollIntervalMS int `fig:"poll_interval_ms" default:"16"`
}

// PollInterval returns the polling period as a duration.
func (i Input) PollInterval() time.Duration {
	return time.Duration(i.PollIntervalMS) * time.Millisecond
}

type Config struct {
	Debug      bool       `fig:"debug"`
	Server     Server     `fig:"server"`
	Monitoring Monitoring `fig:"monitoring"`
	Input      Input      `fig:"input"`
}

// Load reads config.yaml from path (or the default search dirs when path
// is empty) and applies PADVIEW_-prefixed environment overrides. A
// missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	var c Config

	dirs := []string{path}
	if path == "" {
		dirs = []string{".", "configs"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home+"/.padview")
		}
	}

	err := fig.Load(&c, fig.Dirs(dirs...), fig.UseEnv(envPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		err = fig.Load(&c, fig.IgnoreFile(), fig.UseEnv(envPrefix))
	}
	return c, err
}
