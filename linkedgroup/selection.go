// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"slices"

	"cogentcore.org/linked/base/keylist"
	"cogentcore.org/linked/scene"
)

// FindLinkedGroups returns all groups in the world with the given link id,
// in depth-first order.
func FindLinkedGroups(world *scene.World, linkID string) []*scene.Group {
	var gs []*scene.Group
	for _, g := range scene.CollectGroups(world) {
		if g.Data.LinkID == linkID {
			gs = append(gs, g)
		}
	}
	return gs
}

// FindAllLinkedGroups returns all groups in the world that are linked to
// at least one other group, in depth-first order.
func FindAllLinkedGroups(world *scene.World) []*scene.Group {
	all := scene.CollectGroups(world)
	sets := linkSets(all)
	var gs []*scene.Group
	for _, g := range all {
		if len(sets.At(g.Data.LinkID)) > 1 {
			gs = append(gs, g)
		}
	}
	return gs
}

// linkSets returns the given groups grouped by link id, in order of
// first occurrence.
func linkSets(groups []*scene.Group) *keylist.List[string, []*scene.Group] {
	sets := keylist.New[string, []*scene.Group]()
	for _, g := range groups {
		gs, _ := sets.AtTry(g.Data.LinkID)
		sets.Set(g.Data.LinkID, append(gs, g))
	}
	return sets
}

// SelectionResult is the result of [NodeSelectionWithLinkedGroupConstraints].
type SelectionResult struct {

	// Nodes are the nodes that can be selected.
	Nodes []scene.Node

	// GroupsToLock are the groups that must be locked, in the order
	// they were found.
	GroupsToLock []*scene.Group
}

// NodeSelectionWithLinkedGroupConstraints filters the given nodes so that
// at most one instance of each link set is edited at a time. Nodes are
// processed in order. For every group containing an accepted node, all
// other groups with its link id are locked, and later nodes inside a locked
// group are rejected.
func NodeSelectionWithLinkedGroupConstraints(world *scene.World, nodes []scene.Node) SelectionResult {
	var res SelectionResult
	sets := linkSets(scene.CollectGroups(world))
	locked := map[*scene.Group]bool{}
	keepUnlocked := map[*scene.Group]bool{}
	for _, n := range nodes {
		chain := scene.ContainingGroups(n)
		if slices.ContainsFunc(chain, func(g *scene.Group) bool { return locked[g] }) {
			continue
		}
		for _, g := range chain {
			if keepUnlocked[g] {
				continue
			}
			for _, other := range sets.At(g.Data.LinkID) {
				if other != g && !locked[other] {
					locked[other] = true
					res.GroupsToLock = append(res.GroupsToLock, other)
				}
			}
			keepUnlocked[g] = true
		}
		res.Nodes = append(res.Nodes, n)
	}
	return res
}

// FaceSelectionResult is the result of [FaceSelectionWithLinkedGroupConstraints].
type FaceSelectionResult struct {

	// Faces are the faces that can be selected.
	Faces []scene.FaceHandle

	// GroupsToLock are the groups that must be locked.
	GroupsToLock []*scene.Group
}

// FaceSelectionWithLinkedGroupConstraints is like
// [NodeSelectionWithLinkedGroupConstraints] for brush faces: the brushes
// owning the faces are filtered, and only the faces of accepted brushes
// are kept.
func FaceSelectionWithLinkedGroupConstraints(world *scene.World, faces []scene.FaceHandle) FaceSelectionResult {
	var brushes []scene.Node
	seen := map[*scene.Brush]bool{}
	for _, f := range faces {
		if !seen[f.Brush] {
			seen[f.Brush] = true
			brushes = append(brushes, f.Brush)
		}
	}
	sel := NodeSelectionWithLinkedGroupConstraints(world, brushes)

	accepted := map[*scene.Brush]bool{}
	for _, n := range sel.Nodes {
		accepted[n.(*scene.Brush)] = true
	}
	res := FaceSelectionResult{GroupsToLock: sel.GroupsToLock}
	for _, f := range faces {
		if accepted[f.Brush] {
			res.Faces = append(res.Faces, f)
		}
	}
	return res
}
