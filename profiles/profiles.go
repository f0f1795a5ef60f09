/*
Copyright 2024 The lzssdecode Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package profiles loads named LZSS dialect presets — a window size,
// field widths, flag polarity, and addressing mode bundled under a
// short name — so a caller can select a known dialect instead of
// spelling out every lzss.Config field. Profiles are a convenience
// layered on top of the core decoder; lzss itself never imports this
// package.
package profiles

import (
	_ "embed"
	"fmt"

	"github.com/mechiko/lzssdecode/lzss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed presets.yaml
var builtinYAML []byte

// Profile is a named, documented lzss.Config.
type Profile struct {
	Name                 string `yaml:"name"`
	Description          string `yaml:"description"`
	WindowSize           int    `yaml:"window_size"`
	LengthWidth          uint   `yaml:"length_width"`
	LengthBias           uint   `yaml:"length_bias"`
	DistanceWidth        uint   `yaml:"distance_width"`
	FlagWidth            uint   `yaml:"flag_width"`
	FlagZeroMeansLiteral bool   `yaml:"flag_zero_means_literal"`
	DistanceFromEnd      bool   `yaml:"distance_from_end"`
}

// Config builds the lzss.Config this profile describes.
func (p Profile) Config() (*lzss.Config, error) {
	cfg, err := lzss.NewConfig(lzss.Config{
		WindowSize:           p.WindowSize,
		LengthWidth:          p.LengthWidth,
		LengthBias:           p.LengthBias,
		DistanceWidth:        p.DistanceWidth,
		FlagWidth:            p.FlagWidth,
		FlagZeroMeansLiteral: p.FlagZeroMeansLiteral,
		DistanceFromEnd:      p.DistanceFromEnd,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "profile %q", p.Name)
	}
	return cfg, nil
}

type document struct {
	Profiles []Profile `yaml:"profiles"`
}

// Registry is a name-indexed set of profiles.
type Registry struct {
	byName map[string]Profile
}

// NewRegistry returns a Registry preloaded with the built-in profiles
// embedded at build time (gba, classic, compact).
func NewRegistry() (*Registry, error) {
	r := &Registry{byName: map[string]Profile{}}
	if err := r.loadYAML(builtinYAML); err != nil {
		return nil, errors.Wrap(err, "profiles: loading built-in presets")
	}
	return r, nil
}

// Load parses additional profile definitions from data, a YAML document
// shaped like presets.yaml, adding them to the registry. A profile name
// already present is overwritten, so a user-supplied file can redefine
// a built-in preset.
func (r *Registry) Load(data []byte) error {
	return r.loadYAML(data)
}

func (r *Registry) loadYAML(data []byte) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "profiles: parsing YAML")
	}
	for _, p := range doc.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profiles: profile with empty name")
		}
		r.byName[p.Name] = p
	}
	return nil
}

// Lookup returns the named profile, or false if no such profile has
// been loaded.
func (r *Registry) Lookup(name string) (Profile, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names returns every loaded profile name, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
