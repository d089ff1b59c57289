// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"log/slog"
	"slices"

	"cogentcore.org/linked/scene"
)

// PreserveGroupNames copies the names of the groups in originals onto the
// corresponding groups in cloned. Where the two trees do not match, the
// rest of that branch is left as is.
func PreserveGroupNames(cloned, originals []scene.Node) {
	preserveWalk(cloned, originals, func(clone, orig scene.Node) bool {
		cg, ok := clone.(*scene.Group)
		if !ok {
			return false
		}
		cg.Data.Name = orig.(*scene.Group).Data.Name
		return true
	})
}

// PreserveEntityProperties restores the protected properties of the
// entities in originals onto the corresponding entities in cloned.
// Every key protected on either side is removed from the clone, and
// the original value is added back if the original had one. The clone
// ends up with the protected keys of the original.
func PreserveEntityProperties(cloned, originals []scene.Node) {
	preserveWalk(cloned, originals, func(clone, orig scene.Node) bool {
		switch ce := clone.(type) {
		case *scene.Group:
			return true
		case *scene.Entity:
			preserveProperties(&ce.Data, orig.(*scene.Entity).Data)
		}
		return false
	})
}

func preserveProperties(clone *scene.EntityData, orig scene.EntityData) {
	if len(clone.ProtectedProperties) == 0 && len(orig.ProtectedProperties) == 0 {
		return
	}
	keys := slices.Clone(clone.ProtectedProperties)
	for _, k := range orig.ProtectedProperties {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	for _, k := range keys {
		clone.RemoveProperty(k)
		if v, ok := orig.Property(k); ok {
			clone.SetProperty(k, v)
		}
	}
	clone.ProtectedProperties = slices.Clone(orig.ProtectedProperties)
}

// preserveWalk walks each pair of top-level nodes in lockstep. A mismatch
// only ends the walk of the pair it occurs in.
func preserveWalk(cloned, originals []scene.Node, fun PairFunc) {
	n := min(len(cloned), len(originals))
	for i := range n {
		if err := WalkLockstep(originals[i], cloned[i], func(orig, clone scene.Node) bool {
			return fun(clone, orig)
		}); err != nil {
			slog.Debug("linkedgroup: not preserving identity of mismatched content", "err", err)
		}
	}
}
