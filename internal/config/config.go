// Package config handles converter configuration loading.
package config

// Config holds all converter settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds conversion pipeline defaults. CLI flags override
// any of these per run.
type ConvertConfig struct {
	Extension       string  `yaml:"extension"`        // source file extension, e.g. ".gml"
	AxisOrder       string  `yaml:"axis_order"`       // "xyz" or "lat-lon-height"
	Workers         int     `yaml:"workers"`          // 1 = sequential
	VertexTolerance float64 `yaml:"vertex_tolerance"` // consecutive-vertex collapse distance
	MinRingArea     float64 `yaml:"min_ring_area"`    // degenerate-ring rejection threshold
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Extension:       ".gml",
			AxisOrder:       "xyz",
			Workers:         1,
			VertexTolerance: 1e-9,
			MinRingArea:     1e-9,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
