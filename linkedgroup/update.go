// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"
	"log/slog"

	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/math32"
	"cogentcore.org/linked/scene"
	"cogentcore.org/linked/tree"
	"cogentcore.org/linked/undo"
)

// UpdateResult is the new content computed for one target group.
type UpdateResult struct {

	// Target is the group whose children are to be replaced.
	Target *scene.Group

	// Children are the new children of Target. They are not yet part
	// of any tree.
	Children []scene.Node
}

// UpdateLinkedGroups computes new children for every target group from the
// children of the source group, placed into the frame of each target by
// target.T * inverse(source.T). The names of groups and the protected
// properties of entities in each target are kept. The source is skipped
// if it is among the targets. Nothing is changed: the results must be
// committed with [ApplyUpdates].
//
// The update succeeds or fails as a whole. All targets are computed, and
// if any of them fails the returned [*Error] has the kind of the first
// failure and wraps all of them.
func UpdateLinkedGroups(source *scene.Group, targets []*scene.Group, worldBounds math32.Box3, settings *Settings) ([]UpdateResult, error) {
	settings = settings.orDefault()
	updatesTotal.Inc()
	inv, err := source.Data.Transformation.Inverse()
	if err != nil {
		return nil, updateFailed(wrapError(TransformationNotInvertible, err, "could not update groups linked to %v", source))
	}

	var results []UpdateResult
	var errs []error
	for _, target := range targets {
		if target == source {
			continue
		}
		res, err := updateTarget(source, target, inv, worldBounds, settings)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	if len(errs) > 0 {
		return nil, updateFailed(&Error{
			Kind: KindOf(errs[0]),
			Msg:  fmt.Sprintf("could not update %d of the groups linked to %v", len(errs), source),
			Err:  errors.Join(errs...),
		})
	}
	slog.Debug("linkedgroup: updated linked groups", "source", source.String(), "targets", len(results))
	return results, nil
}

// updateTarget computes the new children of a single target.
func updateTarget(source, target *scene.Group, inv math32.Matrix4, worldBounds math32.Box3, settings *Settings) (UpdateResult, error) {
	rel := target.Data.Transformation.Mul(inv)
	kids, err := CloneAndTransformChildren(source, worldBounds, &rel, settings)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("%v: %w", target, err)
	}
	orig := scene.Children(target)
	PreserveGroupNames(kids, orig)
	PreserveEntityProperties(kids, orig)
	return UpdateResult{Target: target, Children: kids}, nil
}

func updateFailed(err *Error) *Error {
	updateFailuresTotal.WithLabelValues(err.Kind.String()).Inc()
	errors.Log(err)
	return err
}

// ApplyUpdates replaces the children of each target with the computed
// children, and saves a single record to the given undo manager if it is
// non-nil. The previous children are detached, not destroyed, so that
// the change can be undone.
func ApplyUpdates(results []UpdateResult, um *undo.Manager) {
	swaps := make([]undo.Swap, 0, len(results))
	for _, r := range results {
		after := scene.AsTreeNodes(r.Children)
		before := tree.SetChildren(r.Target, after)
		swaps = append(swaps, undo.Swap{Parent: r.Target, Before: before, After: after})
	}
	if um != nil && len(swaps) > 0 {
		um.Save("Update Linked Groups", swaps...)
	}
}
