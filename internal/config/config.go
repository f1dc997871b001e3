package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/matrix"
)

const (
	DefaultNumMasses       = 3
	DefaultNumSprings      = 4
	DefaultSpringConstants = "1,1,1,1"
	DefaultMasses          = "1,1,1,1"
)

type Config struct {
	NumMasses       int     `yaml:"num_masses"`
	NumSprings      int     `yaml:"num_springs"`
	SpringConstants string  `yaml:"spring_constants"`
	Masses          string  `yaml:"masses"`
	FixTop          bool    `yaml:"fix_top"`
	FixBottom       bool    `yaml:"fix_bottom"`
	Gravity         float64 `yaml:"gravity"`
	LegacyShape     bool    `yaml:"legacy_shape"`

	// Counts written explicitly in a config file are cross-checked
	// against the value lists; the defaults are advisory only.
	numMassesDeclared  bool
	numSpringsDeclared bool
}

func DefaultConfig() *Config {
	return &Config{
		NumMasses:       DefaultNumMasses,
		NumSprings:      DefaultNumSprings,
		SpringConstants: DefaultSpringConstants,
		Masses:          DefaultMasses,
		FixTop:          true,
		Gravity:         matrix.Gravity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// A second pass with pointer fields tells explicitly written
	// counts apart from the defaults.
	var declared struct {
		NumMasses  *int `yaml:"num_masses"`
		NumSprings *int `yaml:"num_springs"`
	}
	if err := yaml.Unmarshal(data, &declared); err != nil {
		return nil, err
	}
	cfg.numMassesDeclared = declared.NumMasses != nil
	cfg.numSpringsDeclared = declared.NumSprings != nil

	return cfg, nil
}

func Save(path string, cfg *Config) error {
	// Counts are advisory defaults unless declared; writing them
	// unconditionally would turn them into binding constraints on the
	// next Load.
	type persisted struct {
		NumMasses       *int    `yaml:"num_masses,omitempty"`
		NumSprings      *int    `yaml:"num_springs,omitempty"`
		SpringConstants string  `yaml:"spring_constants"`
		Masses          string  `yaml:"masses"`
		FixTop          bool    `yaml:"fix_top"`
		FixBottom       bool    `yaml:"fix_bottom"`
		Gravity         float64 `yaml:"gravity"`
		LegacyShape     bool    `yaml:"legacy_shape"`
	}

	p := persisted{
		SpringConstants: cfg.SpringConstants,
		Masses:          cfg.Masses,
		FixTop:          cfg.FixTop,
		FixBottom:       cfg.FixBottom,
		Gravity:         cfg.Gravity,
		LegacyShape:     cfg.LegacyShape,
	}
	if cfg.numMassesDeclared {
		p.NumMasses = &cfg.NumMasses
	}
	if cfg.numSpringsDeclared {
		p.NumSprings = &cfg.NumSprings
	}

	data, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildChain parses the configured value lists into a validated Chain.
// Counts declared explicitly in a loaded file must agree with the
// lists.
func (c *Config) BuildChain() (chain.Chain, error) {
	constants, err := chain.ParseFloats(c.SpringConstants)
	if err != nil {
		return chain.Chain{}, err
	}
	masses, err := chain.ParseFloats(c.Masses)
	if err != nil {
		return chain.Chain{}, err
	}

	ch, err := chain.New(constants, masses, c.FixTop, c.FixBottom)
	if err != nil {
		return chain.Chain{}, err
	}

	declSprings, declMasses := -1, -1
	if c.numSpringsDeclared {
		declSprings = c.NumSprings
	}
	if c.numMassesDeclared {
		declMasses = c.NumMasses
	}
	if err := ch.ValidateCounts(declSprings, declMasses); err != nil {
		return chain.Chain{}, err
	}

	return ch, nil
}

// MatrixOptions translates config toggles into difference matrix
// construction options.
func (c *Config) MatrixOptions() []matrix.Option {
	if c.LegacyShape {
		return []matrix.Option{matrix.WithLegacyFixedShape()}
	}
	return nil
}
