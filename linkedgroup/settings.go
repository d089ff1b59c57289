// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"
	"runtime"

	"cogentcore.org/linked/base/iox/tomlx"
	"cogentcore.org/linked/math32"
)

// Settings are the settings that control linked group synchronization.
type Settings struct {

	// Workers is the maximum number of goroutines used to transform
	// node content in parallel. Values <= 0 use runtime.GOMAXPROCS.
	Workers int `toml:"workers"`

	// UpdateAngleAfterTransform rotates the angle properties of entities
	// along with their origin.
	UpdateAngleAfterTransform bool `toml:"update_angle_after_transform"`

	// LockTextures makes brush texture alignment follow transforms.
	LockTextures bool `toml:"lock_textures"`

	// WorldSize is the edge length of the cubic world, centered at the origin.
	WorldSize float32 `toml:"world_size"`
}

// DefaultSettings returns the default [Settings].
func DefaultSettings() Settings {
	return Settings{
		UpdateAngleAfterTransform: true,
		LockTextures:              true,
		WorldSize:                 65536,
	}
}

// OpenSettings returns the settings from the given TOML file.
// Values missing from the file keep their defaults.
func OpenSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	if err := tomlx.Open(&s, filename); err != nil {
		return s, fmt.Errorf("linkedgroup.OpenSettings: %w", err)
	}
	return s, s.Validate()
}

// Save saves the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// Validate returns an error if the settings can not be used.
func (s *Settings) Validate() error {
	if !(s.WorldSize > 0) || !math32.IsFinite(s.WorldSize) {
		return fmt.Errorf("linkedgroup.Settings: world size must be positive and finite, got %v", s.WorldSize)
	}
	return nil
}

// WorldBounds returns the bounds of the world.
func (s *Settings) WorldBounds() math32.Box3 {
	return math32.Cube(s.WorldSize / 2)
}

// workers returns the effective number of parallel workers.
func (s *Settings) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// orDefault returns s, or the default settings if s is nil.
func (s *Settings) orDefault() *Settings {
	if s == nil {
		d := DefaultSettings()
		return &d
	}
	return s
}
