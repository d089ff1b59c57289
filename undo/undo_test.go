// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/linked/tree"
)

type testNode struct {
	tree.NodeBase
}

func newTestNode(parent ...tree.Node) *testNode {
	n := &testNode{}
	tree.InitNode(n)
	if len(parent) > 0 {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

func TestUndoRedo(t *testing.T) {
	root := newTestNode()
	a := newTestNode(root)
	b := newTestNode()
	c := newTestNode()

	um := NewManager()
	assert.False(t, um.HasUndoAvail())
	assert.Equal(t, "", um.Undo())

	before := tree.SetChildren(root, []tree.Node{b})
	um.Save("first", Swap{Parent: root, Before: before, After: []tree.Node{b}})
	before = tree.SetChildren(root, []tree.Node{c})
	um.Save("second", Swap{Parent: root, Before: before, After: []tree.Node{c}})
	assert.True(t, um.HasUndoAvail())
	assert.False(t, um.HasRedoAvail())

	assert.Equal(t, "second", um.Undo())
	assert.Equal(t, []tree.Node{b}, root.Children)
	assert.Nil(t, c.Parent)
	assert.Equal(t, "first", um.Undo())
	assert.Equal(t, []tree.Node{a}, root.Children)
	assert.Equal(t, tree.Node(root), a.Parent)
	assert.Equal(t, "", um.Undo())

	assert.Equal(t, "first", um.Redo())
	assert.Equal(t, []tree.Node{b}, root.Children)
	assert.True(t, um.HasRedoAvail())

	// saving drops the undone second record
	before = tree.SetChildren(root, []tree.Node{a})
	um.Save("third", Swap{Parent: root, Before: before, After: []tree.Node{a}})
	assert.Len(t, um.Records, 2)
	assert.False(t, um.HasRedoAvail())
	assert.Equal(t, "", um.Redo())

	um.Reset()
	assert.False(t, um.HasUndoAvail())
}
