// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name    string
	Workers int
	Lock    bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := testStruct{Name: "linked", Workers: 4, Lock: true}
	require.NoError(t, Save(&in, fn))
	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	var out testStruct
	assert.Error(t, Open(&out, filepath.Join(dir, "missing.toml")))

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Name = \"a\"\nWorkers = \"two\"\n"), 0666))
	assert.Error(t, Open(&out, fn))

	fn = filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Name = \"a\"\nWorkers = 2\n"), 0666))
	out = testStruct{Lock: true}
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, testStruct{Name: "a", Workers: 2, Lock: true}, out)
}
