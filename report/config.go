// Package report orchestrates one reporting run: aggregate parsed results
// across both cohorts, group the new cohort by batch prefix, merge each
// group against the baseline and write the comparison tables.
package report

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"

	"github.com/ssi-dk/bifrost-reporter/table"
)

// Config mirrors the YAML run configuration.
type Config struct {
	Project struct {
		Name string `yaml:"name"`
	} `yaml:"project"`
	Illumina struct {
		New      string `yaml:"new"`
		Original string `yaml:"original"`
	} `yaml:"Illumina"`
	Thresholds map[string]Threshold `yaml:"thresholds"`
	Prefix     PrefixRule           `yaml:"prefix"`
	Compare    struct {
		Axis      string `yaml:"axis"`
		Reference string `yaml:"reference"`
	} `yaml:"comparison"`
}

// Threshold holds the inclusive minimum coverage and identity percentages
// for one analysis type. Nil bounds disable that check.
type Threshold struct {
	Coverage *float64 `yaml:"coverage"`
	Identity *float64 `yaml:"identity"`
}

// DefaultThresholds reproduce the established filter settings for the
// finder tools.
var DefaultThresholds = map[string]Threshold{
	"ariba_plasmidfinder":   {Coverage: bound(80), Identity: bound(80)},
	"ariba_resfinder":       {Coverage: bound(60), Identity: bound(90)},
	"ariba_virulencefinder": {Coverage: bound(60), Identity: bound(90)},
	"amrfinderplus_fbi":     {Coverage: bound(60), Identity: bound(90)},
}

func bound(v float64) *float64 {
	return &v
}

// ConfigError marks a fatal configuration problem; the run aborts with a
// non-zero exit.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig reads and validates the run configuration. Sheet paths are
// home-expanded and resolved relative to the config file's directory.
func LoadConfig(path string) (*Config, error) {
	path = ExpandHome(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if cfg.Illumina.New == "" || cfg.Illumina.Original == "" {
		return nil, &ConfigError{Path: path,
			Err: errors.New("Illumina.new and Illumina.original are both required")}
	}

	base := filepath.Dir(path)
	cfg.Illumina.New = resolve(base, cfg.Illumina.New)
	cfg.Illumina.Original = resolve(base, cfg.Illumina.Original)

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Thresholds == nil {
		c.Thresholds = map[string]Threshold{}
	}
	for name, th := range DefaultThresholds {
		if _, set := c.Thresholds[name]; !set {
			c.Thresholds[name] = th
		}
	}
	if c.Prefix.Separator == "" {
		c.Prefix.Separator = DefaultPrefixRule.Separator
	}
	if c.Prefix.Tokens == 0 {
		c.Prefix.Tokens = DefaultPrefixRule.Tokens
	}
	if c.Compare.Axis == "" {
		c.Compare.Axis = AxisRows
	}
}

// Threshold returns the filter bounds for one analysis type; unset means no
// filtering.
func (c *Config) Threshold(analysis string) table.Thresholds {
	th := c.Thresholds[analysis]
	return table.Thresholds{CoverageMin: th.Coverage, IdentityMin: th.Identity}
}

func resolve(base, path string) string {
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}
