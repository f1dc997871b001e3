package config

import "github.com/san-kum/springlab/internal/matrix"

var Presets = map[string]*Config{
	"uniform": {
		SpringConstants: "1,1,1,1", Masses: "1,1,1",
		FixTop: true, FixBottom: true, Gravity: matrix.Gravity,
	},
	"hanging": {
		SpringConstants: "1,1,1", Masses: "1,1,1",
		FixTop: true, Gravity: matrix.Gravity,
	},
	"stiff-top": {
		SpringConstants: "100,10,1,1", Masses: "1,1,1",
		FixTop: true, FixBottom: true, Gravity: matrix.Gravity,
	},
	"heavy-bottom": {
		SpringConstants: "10,10,10", Masses: "1,2,5",
		FixTop: true, Gravity: matrix.Gravity,
	},
	"soft": {
		SpringConstants: "0.5,0.5,0.5,0.5", Masses: "1,1,1",
		FixTop: true, FixBottom: true, Gravity: matrix.Gravity,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
