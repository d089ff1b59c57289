// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/linked/tree"
)

// testNode is a minimal higher-level node type.
type testNode struct {
	NodeBase
	label string
}

func newTestNode(label string, parent ...Node) *testNode {
	n := &testNode{label: label}
	InitNode(n)
	if len(parent) > 0 {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

func labels(ns []Node) []string {
	var res []string
	for _, n := range ns {
		res = append(res, n.(*testNode).label)
	}
	return res
}

func buildTree() *testNode {
	root := newTestNode("root")
	newTestNode("child0", root)
	child1 := newTestNode("child1", root)
	schild1 := newTestNode("subchild1", child1)
	newTestNode("subsubchild1", schild1)
	newTestNode("child2", root)
	return root
}

func TestWalkDown(t *testing.T) {
	root := buildTree()
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.(*testNode).label)
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2"}, res)

	res = nil
	root.WalkDown(func(n Node) bool {
		res = append(res, n.(*testNode).label)
		return n.(*testNode).label != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)
}

func TestWalkUp(t *testing.T) {
	root := buildTree()
	leaf := root.FindPath("/[1]/[0]/[0]")
	assert.NotNil(t, leaf)
	assert.Equal(t, "subsubchild1", leaf.(*testNode).label)
	assert.Equal(t, "/[1]/[0]/[0]", leaf.AsTree().Path())

	var res []string
	leaf.AsTree().WalkUpParent(func(n Node) bool {
		res = append(res, n.(*testNode).label)
		return Continue
	})
	assert.Equal(t, []string{"subchild1", "child1", "root"}, res)
	assert.Equal(t, 2, leaf.AsTree().ParentLevel(root))
	assert.Equal(t, Node(root), Root(leaf))
	assert.True(t, IsRoot(root))
	assert.Nil(t, root.FindPath("/[7]"))
	assert.Equal(t, "child2", root.FindPath("[-1]").(*testNode).label)
}

func TestSetChildren(t *testing.T) {
	root := buildTree()
	a := newTestNode("a")
	b := newTestNode("b")
	old := SetChildren(root, []Node{a, b})
	assert.Equal(t, []string{"child0", "child1", "child2"}, labels(old))
	assert.Equal(t, []string{"a", "b"}, labels(root.Children))
	assert.Equal(t, Node(root), a.Parent)
	assert.Nil(t, old[0].AsTree().Parent)
	assert.Equal(t, 1, b.IndexInParent())

	SetChildren(root, old)
	assert.Equal(t, []string{"child0", "child1", "child2"}, labels(root.Children))
	assert.Nil(t, a.Parent)
}

func TestDeleteAndMove(t *testing.T) {
	root := buildTree()
	child1 := root.Child(1)
	sub := child1.AsTree().Child(0)
	MoveToParent(sub, root)
	assert.Equal(t, 0, child1.AsTree().NumChildren())
	assert.Equal(t, 4, root.NumChildren())
	assert.Equal(t, 3, sub.AsTree().IndexInParent())

	assert.True(t, root.DeleteChild(child1))
	assert.False(t, root.DeleteChild(child1))
	assert.Nil(t, child1.AsTree().This)
	assert.Equal(t, []string{"child0", "child2", "subchild1"}, labels(root.Children))

	root.DeleteChildren()
	assert.False(t, root.HasChildren())
	assert.Nil(t, sub.AsTree().This)
}
