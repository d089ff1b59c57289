// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/scene"
)

// GenerateLinkID returns a new unique link id.
func GenerateLinkID() string {
	return uuid.NewString()
}

// UnlinkGroup removes the given group from its link set by giving it a
// new unique link id, and resets its transformation to the identity.
func UnlinkGroup(g *scene.Group) {
	g.Data.LinkID = GenerateLinkID()
	g.Data = g.Data.ResetTransformation()
}

// InitializeLinkIDs makes the link ids of the content of linked groups
// consistent. All groups in the given subtrees are grouped by link id,
// and for every set of at least two groups, the link ids of the content
// of the first group are copied onto the corresponding content of the
// others. Sets are processed in order of link id. A set whose members do
// not have the same structure is unlinked: every member gets a new link id
// and an identity transformation. The returned errors describe the sets
// that were unlinked; the other sets are still processed.
func InitializeLinkIDs(nodes []scene.Node) []error {
	sets := linkSets(scene.CollectGroups(scene.AsTreeNodes(nodes)...))
	ids := slices.Clone(sets.Keys)
	slices.Sort(ids)

	var errs []error
	for _, id := range ids {
		gs := sets.At(id)
		if len(gs) < 2 {
			continue
		}
		assign, err := linkIDAssignments(gs[0], gs[1:])
		if err != nil {
			errs = append(errs, unlinkSet(gs, err, "the groups with link id %q do not have the same structure and were unlinked", id))
			continue
		}
		setLinkIDs(assign)
	}
	return errs
}

// CopyAndSetLinkIDs links the given targets to the source, typically
// after they were created by duplicating it, by copying the link ids of
// the source and its content onto the corresponding nodes of each target.
// If any target does not have the same structure as the source, no link
// ids are copied and all targets are unlinked instead. The source is never
// changed.
func CopyAndSetLinkIDs(source *scene.Group, targets []*scene.Group) []error {
	assign, err := linkIDAssignments(source, targets)
	if err != nil {
		return []error{unlinkSet(targets, err, "could not link %d groups to %v and unlinked them", len(targets), source)}
	}
	setLinkIDs(assign)
	return nil
}

// linkIDAssignments returns the link id to set for every node in the
// targets, taken from the corresponding node in the source.
func linkIDAssignments(source *scene.Group, targets []*scene.Group) (map[scene.Node]string, error) {
	assign := map[scene.Node]string{}
	for _, t := range targets {
		if t == source {
			continue
		}
		err := WalkLockstep(source, t, func(ref, cand scene.Node) bool {
			if id, ok := scene.LinkID(ref); ok {
				assign[cand] = id
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("%v: %w", t, err)
		}
	}
	return assign, nil
}

func setLinkIDs(assign map[scene.Node]string) {
	for n, id := range assign {
		switch n := n.(type) {
		case *scene.Group:
			n.Data.LinkID = id
		case *scene.Entity:
			n.Data.LinkID = id
		case *scene.Brush:
			n.Data.LinkID = id
		case *scene.Patch:
			n.Data.LinkID = id
		}
	}
}

// unlinkSet unlinks all of the given groups and returns a logged
// warning wrapping the structural error that caused it.
func unlinkSet(gs []*scene.Group, err error, format string, args ...any) error {
	for _, g := range gs {
		UnlinkGroup(g)
	}
	groupsUnlinkedTotal.WithLabelValues("inconsistent").Add(float64(len(gs)))
	return errors.Warn(wrapError(InconsistentLinkedGroupStructure, err, format, args...), "kind", InconsistentLinkedGroupStructure)
}
