// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[string, string]()
	kl.Set("classname", "light")
	kl.Set("origin", "0 0 0")
	kl.Set("light", "300")
	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, []string{"classname", "origin", "light"}, kl.Keys)

	kl.Set("origin", "1 2 3")
	assert.Equal(t, "1 2 3", kl.At("origin"))
	assert.Equal(t, 1, kl.IndexByKey("origin"))
	assert.Error(t, kl.Add("light", "200"))

	assert.True(t, kl.DeleteByKey("origin"))
	assert.False(t, kl.DeleteByKey("origin"))
	assert.Equal(t, 1, kl.IndexByKey("light"))
	_, ok := kl.AtTry("origin")
	assert.False(t, ok)
	assert.Equal(t, "{classname: light, light: 300}", kl.String())
}

func TestClone(t *testing.T) {
	kl := New[string, string]()
	kl.Set("a", "1")
	kl.Set("b", "2")
	cl := kl.Clone()
	cl.Set("a", "x")
	cl.Set("c", "3")
	assert.Equal(t, "1", kl.At("a"))
	assert.False(t, kl.Has("c"))
	assert.True(t, cl.Has("c"))

	eq := func(a, b string) bool { return a == b }
	assert.False(t, kl.Equal(cl, eq))
	assert.True(t, kl.Equal(kl.Clone(), eq))

	var nl *List[string, string]
	assert.Equal(t, 0, nl.Len())
	assert.Equal(t, 0, nl.Clone().Len())
}

func TestZeroValue(t *testing.T) {
	var kl List[string, int]
	kl.Set("x", 1)
	assert.Equal(t, 1, kl.At("x"))

	// lists filled by direct slice assignment rebuild their indexes lazily
	dl := &List[string, int]{Keys: []string{"p", "q"}, Values: []int{1, 2}}
	assert.Equal(t, 2, dl.At("q"))
}
