package config

import (
	"context"
	"fmt"

	"github.com/de-tools/dipole-link/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ProfileRegistry resolves named link presets stored in an INI file.
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetInputs(ctx context.Context, profile string) (domain.LinkInputs, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetInputs(_ context.Context, profile string) (domain.LinkInputs, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.LinkInputs{}, fmt.Errorf("profile %s not found", profile)
	}

	var in domain.LinkInputs
	for _, field := range []struct {
		key string
		dst *float64
	}{
		{"current", &in.Current},
		{"frequency", &in.Frequency},
		{"distance", &in.Distance},
		{"tx_radius", &in.TxRadius},
		{"tx_length", &in.TxLength},
		{"rx_radius", &in.RxRadius},
		{"rx_length", &in.RxLength},
	} {
		if !section.HasKey(field.key) {
			return domain.LinkInputs{}, fmt.Errorf("profile %s: missing key %q", profile, field.key)
		}
		v, err := section.Key(field.key).Float64()
		if err != nil {
			return domain.LinkInputs{}, fmt.Errorf("profile %s: key %q: %w", profile, field.key, err)
		}
		*field.dst = v
	}

	return in, nil
}
