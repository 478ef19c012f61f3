package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"github.com/spf13/viper"
)

const envPrefix = "DIPOLE"

// LoadConstants returns the physical constants, starting from the defaults and
// applying an optional config file and DIPOLE_* environment overrides.
// An empty path skips the file.
func LoadConstants(path string) (domain.PhysicalConstants, error) {
	defaults := domain.DefaultConstants()

	v := viper.New()
	v.SetDefault("speed_of_light", defaults.SpeedOfLight)
	v.SetDefault("permeability", defaults.Permeability)
	v.SetDefault("conductivity", defaults.Conductivity)
	v.SetDefault("directivity_hertzian", defaults.DirectivityHertzian)
	v.SetDefault("directivity_halfwave", defaults.DirectivityHalfWave)
	v.SetDefault("radiation_resistance_halfwave", defaults.RadiationResistanceHalfWave)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.PhysicalConstants{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c domain.PhysicalConstants
	if err := v.Unmarshal(&c); err != nil {
		return domain.PhysicalConstants{}, fmt.Errorf("failed to parse constants: %w", err)
	}
	return c, nil
}
