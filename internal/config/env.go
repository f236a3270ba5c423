package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Zero values mean unset;
// in particular TKG_LENGTH=0 is indistinguishable from an unset variable.
type Env struct {
	ConfigFile string   `env:"TKG_CONFIG"`
	Profile    string   `env:"TKG_PROFILE"`
	Length     int      `env:"TKG_LENGTH"`
	Classes    []string `env:"TKG_CLASSES" envSeparator:","`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
