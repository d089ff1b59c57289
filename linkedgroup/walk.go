// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"cogentcore.org/linked/scene"
)

// PairFunc is called for each pair of corresponding nodes during a
// lockstep walk. The kinds of ref and cand are guaranteed to match.
// It returns whether the walk should descend into their children.
type PairFunc func(ref, cand scene.Node) bool

// WalkLockstep walks the reference and candidate trees in lockstep,
// pairing nodes by position in child order and calling fun for each pair.
// It returns an [InconsistentLinkedGroupStructure] error and stops the walk
// as soon as the kinds of a pair differ, or a pair that fun descends into
// has different numbers of children. Pairs visited before the mismatch
// have already been passed to fun.
func WalkLockstep(ref, cand scene.Node, fun PairFunc) error {
	if ref.Kind() != cand.Kind() {
		return newError(InconsistentLinkedGroupStructure,
			"inconsistent linked group structure: expected %v at %s, found %v", ref.Kind(), cand.AsTree().Path(), cand.Kind())
	}
	if !fun(ref, cand) {
		return nil
	}
	return WalkLockstepChildren(scene.Children(ref), scene.Children(cand), fun)
}

// WalkLockstepChildren walks corresponding entries of the two node lists
// with [WalkLockstep]. Lists of different lengths are a mismatch.
func WalkLockstepChildren(refs, cands []scene.Node, fun PairFunc) error {
	if len(refs) != len(cands) {
		return newError(InconsistentLinkedGroupStructure,
			"inconsistent linked group structure: expected %d children, found %d", len(refs), len(cands))
	}
	for i := range refs {
		if err := WalkLockstep(refs[i], cands[i], fun); err != nil {
			return err
		}
	}
	return nil
}
