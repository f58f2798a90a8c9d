package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// cliConfig is the resolved CLI configuration.
// Priority: flags > env > config file > defaults.
type cliConfig struct {
	Q            int     `koanf:"q"`
	Dim          int     `koanf:"dim"`
	CliqueSize   int     `koanf:"clique-size"`
	PhaseModulus int     `koanf:"phase-modulus"`
	Aut          bool    `koanf:"aut"`
	AutBudget    uint64  `koanf:"aut-budget"`
	Epsilon      float64 `koanf:"epsilon"`
	Parallelism  int     `koanf:"parallelism"`
	JSON         bool    `koanf:"json"`
	Verbose      bool    `koanf:"verbose"`
}

const (
	configFile = "quadric.toml"
	envPrefix  = "QUADRIC_"
)

// loadConfig layers defaults, quadric.toml, QUADRIC_* environment variables
// and the parsed flag set.
func loadConfig(f *pflag.FlagSet) (*cliConfig, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"q":             3,
		"dim":           4,
		"clique-size":   0,
		"phase-modulus": 6,
		"aut":           false,
		"aut-budget":    0,
		"epsilon":       0.0,
		"parallelism":   0,
		"json":          false,
		"verbose":       false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Optional config file; absence is fine.
	_ = k.Load(file.Provider(configFile), toml.Parser())

	// QUADRIC_PHASE_MODULUS=12 → phase-modulus, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg cliConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
