package config

var Presets = map[string]*Config{
	"forward-euler": {
		Initial: 1.0, Decay: 2.0, Dt: 0.1, Duration: 4.0, Theta: 0.0,
		Thetas: []float64{0}, Levels: DefaultLevels,
	},
	"backward-euler": {
		Initial: 1.0, Decay: 2.0, Dt: 0.1, Duration: 4.0, Theta: 1.0,
		Thetas: []float64{1}, Levels: DefaultLevels,
	},
	"crank-nicolson": {
		Initial: 1.0, Decay: 2.0, Dt: 0.1, Duration: 4.0, Theta: 0.5,
		Thetas: []float64{0.5}, Levels: DefaultLevels,
	},
	"sweep": {
		Initial: 1.0, Decay: 2.0, Dt: 0.4, Duration: 4.0, Theta: 0.5,
		Thetas: []float64{0, 0.5, 1}, Levels: DefaultLevels,
	},
	"stiff": {
		// Large a*dt: Forward Euler oscillates and grows, Backward Euler stays
		// monotone. Good for demonstrating unconditional stability.
		Initial: 1.0, Decay: 2.0, Dt: 1.5, Duration: 12.0, Theta: 1.0,
		Thetas: []float64{0, 1}, Levels: 3,
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
