package config

var Presets = map[string]map[string]*Config{
	"gamma": {
		"factorial": {
			Function: "gamma", From: 1.0, To: 6.0, Samples: 250,
		},
		"small": {
			Function: "gamma", From: 0.05, To: 1.0, Samples: 200,
		},
	},
	"zeta": {
		"edge": {
			Function: "zeta", From: 1.1, To: 4.0, Samples: 300,
		},
		"tail": {
			Function: "zeta", From: 2.0, To: 20.0, Samples: 200,
		},
	},
	"eta": {
		"critical": {
			Function: "eta", From: 0.1, To: 1.0, Samples: 200,
		},
		"wide": {
			Function: "eta", From: 0.5, To: 10.0, Samples: 250,
		},
	},
	"erf": {
		"bell": {
			Function: "erf", From: -3.0, To: 3.0, Samples: 240,
		},
		"tail": {
			Function: "erf", From: 2.0, To: 6.0, Samples: 200,
		},
	},
	"exp": {
		"unit": {
			Function: "exp", From: -1.0, To: 1.0, Samples: 200,
		},
		"growth": {
			Function: "exp", From: 0.0, To: 5.0, Samples: 250,
		},
	},
}

func GetPreset(function, preset string) *Config {
	functionPresets, ok := Presets[function]
	if !ok {
		return nil
	}
	cfg, ok := functionPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(function string) []string {
	functionPresets, ok := Presets[function]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(functionPresets))
	for name := range functionPresets {
		names = append(names, name)
	}
	return names
}
