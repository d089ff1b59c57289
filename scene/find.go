// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/linked/tree"

// ContainingGroups returns the chain of groups that contain the given
// node, innermost first. The node itself is not included.
func ContainingGroups(n Node) []*Group {
	var gs []*Group
	n.AsTree().WalkUpParent(func(k tree.Node) bool {
		if g, ok := k.(*Group); ok {
			gs = append(gs, g)
		}
		return tree.Continue
	})
	return gs
}

// ContainingGroup returns the innermost group containing the given node,
// or nil if it is not inside a group.
func ContainingGroup(n Node) *Group {
	var res *Group
	n.AsTree().WalkUpParent(func(k tree.Node) bool {
		if g, ok := k.(*Group); ok {
			res = g
			return tree.Break
		}
		return tree.Continue
	})
	return res
}

// CollectGroups returns all groups in the subtrees of the given nodes,
// including the nodes themselves, in depth-first order.
func CollectGroups(nodes ...tree.Node) []*Group {
	var gs []*Group
	for _, n := range nodes {
		n.AsTree().WalkDown(func(k tree.Node) bool {
			if g, ok := k.(*Group); ok {
				gs = append(gs, g)
			}
			return tree.Continue
		})
	}
	return gs
}

// FaceHandle identifies one face of a brush.
type FaceHandle struct {
	Brush *Brush
	Index int
}

// Face returns the face the handle refers to.
func (h FaceHandle) Face() BrushFace {
	return h.Brush.Data.Faces[h.Index]
}
