// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/scene"
)

// RepairDocument fixes the structural problems of a freshly loaded
// document so that it can always be opened: malformed group
// transformations are reset, groups linked to one of their own
// ancestors are unlinked, and the link ids of all linked content are
// made consistent. The returned errors are the diagnostics of all
// repairs made, each of which has been logged as a warning.
func RepairDocument(world *scene.World) []error {
	var errs []error
	errs = append(errs, RepairMalformedTransformations(world)...)
	errs = append(errs, RepairRecursiveLinks(world)...)
	errs = append(errs, InitializeLinkIDs(scene.Children(world))...)
	return errs
}

// RepairMalformedTransformations resets the transformation of every group
// whose transformation is not finite or not invertible to the identity.
func RepairMalformedTransformations(world *scene.World) []error {
	var errs []error
	for _, g := range scene.CollectGroups(world) {
		t := g.Data.Transformation
		if _, err := t.Inverse(); err == nil && t.IsFinite() {
			continue
		}
		g.Data = g.Data.ResetTransformation()
		errs = append(errs, errors.Warn(newError(MalformedTransformationIssue,
			"%v has a malformed transformation %v and was reset to the identity", g, t), "kind", MalformedTransformationIssue))
	}
	return errs
}

// RepairRecursiveLinks unlinks every group that is contained in a group
// with the same link id, directly or through other groups. Outer groups
// are handled before the groups they contain.
func RepairRecursiveLinks(world *scene.World) []error {
	var errs []error
	for _, g := range scene.CollectGroups(world) {
		for _, a := range scene.ContainingGroups(g) {
			if a.Data.LinkID != g.Data.LinkID {
				continue
			}
			id := g.Data.LinkID
			UnlinkGroup(g)
			groupsUnlinkedTotal.WithLabelValues("recursive").Inc()
			errs = append(errs, errors.Warn(newError(RecursiveLinkedGroup,
				"%v is inside of %v with the same link id %q and was unlinked", g, a, id), "kind", RecursiveLinkedGroup))
			break
		}
	}
	return errs
}
