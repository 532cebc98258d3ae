package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/cwbudde/binafft/internal/errors"
)

// LoadDotEnv copies the variables in path into the process environment.
// Variables that are already set win. A missing file is only an error when
// the path was requested explicitly.
func LoadDotEnv(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}

		return apperrors.NewConfigError("loading %s: %v", path, err)
	}

	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}

	return false
}

// envOverride maps one BINAFFT_ variable to the flags it shadows.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst(c) = parsed
		}
	}
}

func boolOverride(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"MODE", []string{"mode"}, func(c *AppConfig, v string) { c.Mode = v }},
	{"MIN", []string{"min"}, intOverride(func(c *AppConfig) *int { return &c.MinLog2 })},
	{"MAX", []string{"max"}, intOverride(func(c *AppConfig) *int { return &c.MaxLog2 })},
	{"ITERATIONS", []string{"iterations"}, intOverride(func(c *AppConfig) *int { return &c.Iterations })},
	{"SAMPLE", []string{"sample"}, intOverride(func(c *AppConfig) *int { return &c.SampleLog2 })},
	{"WORKERS", []string{"workers"}, intOverride(func(c *AppConfig) *int { return &c.Workers })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	{"PRECISION", []string{"precision"}, func(c *AppConfig, v string) { c.Precision = v }},
	{"SIMD", []string{"simd"}, func(c *AppConfig, v string) { c.SIMD = v }},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) { c.MetricsAddr = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},

	{"NO_SMALL", []string{"no-small"}, boolOverride(func(c *AppConfig) *bool { return &c.NoSmall })},
	{"JSON_LOGS", []string{"json-logs"}, boolOverride(func(c *AppConfig) *bool { return &c.JSONLogs })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	return defaultVal
}

// applyEnvOverrides fills every field whose flag was not given explicitly
// from its BINAFFT_ variable.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}

		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
