package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// envFlags maps environment variables to the global flags they default.
var envFlags = map[string]string{
	"CHASE_FPS":       "fps",
	"CHASE_SEED":      "seed",
	"CHASE_CONFIG":    "config",
	"CHASE_LOG_FILE":  "log-file",
	"CHASE_LOG_LEVEL": "log-level",
}

// applyEnv sets each flag that was not given on the command line from its
// environment variable, when that variable is non-empty.
func applyEnv(flags *pflag.FlagSet) error {
	for env, name := range envFlags {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, val, err)
		}
	}
	return nil
}
