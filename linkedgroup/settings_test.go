// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/linked/math32"
)

func TestSettings(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.toml")

	s := DefaultSettings()
	s.Workers = 3
	s.LockTextures = false
	require.NoError(t, s.Save(fn))
	loaded, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
	assert.Equal(t, 3, loaded.workers())
	assert.Equal(t, math32.Cube(32768), loaded.WorldBounds())

	partial := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(partial, []byte("world_size = 1024\n"), 0666))
	loaded, err = OpenSettings(partial)
	require.NoError(t, err)
	assert.Equal(t, float32(1024), loaded.WorldSize)
	assert.True(t, loaded.UpdateAngleAfterTransform, "missing values keep their defaults")
	assert.Positive(t, loaded.workers())

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("world_size = -1\n"), 0666))
	_, err = OpenSettings(bad)
	assert.Error(t, err)

	_, err = OpenSettings(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
