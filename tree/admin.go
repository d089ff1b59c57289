// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node by setting [NodeBase.This].
// It must be called by every constructor of a higher-level node type
// before the node is used.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This != this {
		n.This = this
	}
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	oldParent := child.AsTree().Parent
	if oldParent != nil {
		ob := oldParent.AsTree()
		idx := IndexOf(ob.Children, child.AsTree().This)
		if idx >= 0 {
			ob.Children = append(ob.Children[:idx:idx], ob.Children[idx+1:]...)
		}
	}
	parent.AsTree().AddChild(child)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().This == nil || n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// SetChildren replaces all of the children of the given parent with
// the given nodes in one step, and returns the previous children,
// which are detached from the parent but not destroyed. The new
// children must not be on another tree.
func SetChildren(parent Node, kids []Node) []Node {
	pb := parent.AsTree()
	old := pb.Children
	for _, k := range old {
		if k != nil && k.AsTree().Parent == pb.This {
			k.AsTree().Parent = nil
		}
	}
	pb.Children = make([]Node, 0, len(kids))
	for _, k := range kids {
		pb.AddChild(k)
	}
	return old
}
