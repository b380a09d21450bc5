package configloader

import "github.com/yaklabco/gomdbuild/pkg/config"

// Layer holds the settings one configuration source provides.
// Nil fields are unset and leave lower-precedence values in place, so a
// higher layer can turn a boolean off.
type Layer struct {
	Flavor         *config.Flavor `yaml:"flavor"`
	DetectLanguage *bool          `yaml:"detect_language"`
	Verify         *bool          `yaml:"verify"`
	LogLevel       *string        `yaml:"log_level"`
}

// IsEmpty reports whether the layer sets nothing.
func (l *Layer) IsEmpty() bool {
	return l == nil ||
		(l.Flavor == nil && l.DetectLanguage == nil && l.Verify == nil && l.LogLevel == nil)
}

// merge applies override on top of base and returns a new Config.
// base is not modified.
func merge(base *config.Config, override *Layer) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if override == nil {
		return result
	}

	if override.Flavor != nil {
		result.Flavor = *override.Flavor
	}
	if override.DetectLanguage != nil {
		result.DetectLanguage = *override.DetectLanguage
	}
	if override.Verify != nil {
		result.Verify = *override.Verify
	}
	if override.LogLevel != nil {
		result.LogLevel = *override.LogLevel
	}

	return result
}

// MergeAll applies layers to base in order, with later layers taking precedence.
func MergeAll(base *config.Config, layers ...*Layer) *config.Config {
	result := base
	for _, l := range layers {
		result = merge(result, l)
	}
	if result == nil {
		return config.NewConfig()
	}
	return result
}
