// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strconv"
	"strings"
)

// NodeBase implements the core functionality of the [Node] interface.
// You must use NodeBase as an embedded struct in all higher-level tree types.
//
// All nodes must be properly initialized by calling [InitNode] in their
// constructor. This ensures that the [NodeBase.This] field is set correctly.
//
// A parent owns its children: children are only ever reachable through
// exactly one parent, and [NodeBase.Parent] is a non-owning back pointer
// that is only used for ancestor queries.
type NodeBase struct {

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types, which
	// is necessary for type switches on the concrete node kind. This is set
	// to nil when the node is destroyed.
	This Node

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. To change the parent of a node, use [MoveToParent];
	// you should typically not set this field directly. Nodes can only have one parent
	// at a time.
	Parent Node

	// Children is the ordered list of children of this node. All of them are set
	// to have this node as their parent. The order is significant: it defines
	// positional correspondence between structurally equivalent trees.
	Children []Node

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index) // very fast if index is close
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// Paths:

// Path returns the path to this node from the tree root, using the index
// of each node in its parent in brackets, separated by / delimeters.
// The root node has the path "/".
func (n *NodeBase) Path() string {
	if n.Parent == nil {
		return "/"
	}
	pp := n.Parent.AsTree().Path()
	if pp == "/" {
		pp = ""
	}
	return pp + "/[" + strconv.Itoa(n.IndexInParent()) + "]"
}

// FindPath returns the node at the given path from this node.
// The given path must be consistent with the format produced
// by [NodeBase.Path]. Negative indexes count from the end.
// It returns nil if no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	curn := n.This
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if len(pe) == 0 {
			continue
		}
		if len(pe) < 3 || pe[0] != '[' || pe[len(pe)-1] != ']' {
			return nil
		}
		idx, err := strconv.Atoi(pe[1 : len(pe)-1])
		if err != nil {
			return nil
		}
		cb := curn.AsTree()
		if idx < 0 { // from end
			idx = cb.NumChildren() + idx
		}
		curn = cb.Child(idx)
		if curn == nil {
			return nil
		}
	}
	return curn
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree (see [MoveToParent]).
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// Deleting Children:

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node, all of its children,
// and all of its children's children, etc.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), sequentially in the current goroutine. It stops walking if the
// function returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown strategy: https://stackoverflow.com/questions/5278580/non-recursive-depth-first-search-algorithm

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner over all of the children, sequentially in the
// current goroutine. It stops walking the current branch of the tree if
// the function returns [Break] and keeps walking if it returns [Continue].
// It is non-recursive and safe for concurrent calling as long as no
// goroutine modifies the tree.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	tm := map[Node]int{} // traversal map
	start := n.This
	cur := start
	tm[cur] = -1
outer:
	for {
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check for nil before and after.
		// A false return from fun indicates to stop.
		if cb.This != nil && fun(cur) && cb.This != nil {
			if cb.HasChildren() {
				tm[cur] = 0
				nxt := cb.Child(0)
				if nxt != nil && nxt.AsTree().This != nil {
					cur = nxt.AsTree().This
					tm[cur] = -1
					continue
				}
			}
		} else {
			tm[cur] = cb.NumChildren()
		}
		// if we get here, we're in the ascent branch -- move to the right and then up
		for {
			cb := cur.AsTree() // may have changed, so must get again
			curChild := tm[cur]
			if (curChild + 1) < cb.NumChildren() {
				curChild++
				tm[cur] = curChild
				nxt := cb.Child(curChild)
				if nxt != nil && nxt.AsTree().This != nil {
					cur = nxt.AsTree().This
					tm[cur] = -1
					continue outer
				}
				continue
			}
			delete(tm, cur)
			// couldn't go right, move up..
			if cur == start {
				break outer // done!
			}
			parent := cb.Parent
			if parent == nil || parent == cur { // shouldn't happen
				break outer
			}
			cur = parent
		}
	}
}
