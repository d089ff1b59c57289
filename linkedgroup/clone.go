// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/math32"
	"cogentcore.org/linked/scene"
	"cogentcore.org/linked/tree"
)

// CloneAndTransformChildren returns new copies of the children of the given
// node, with the content of every descendant transformed by m. The
// transforms are computed in parallel, and the copies are then built
// sequentially with the same shape as the original. It fails with
// [NodeTransformFailed] if any content transform fails, and with
// [WorldBoundsExceeded] if any new node lies outside of worldBounds,
// including brushes that land entirely outside of it.
// On failure nothing is returned and the original is unchanged.
// Nil settings use the defaults.
func CloneAndTransformChildren(node scene.Node, worldBounds math32.Box3, m *math32.Matrix4, settings *Settings) ([]scene.Node, error) {
	start := time.Now()
	defer func() { cloneDuration.Observe(time.Since(start).Seconds()) }()

	settings = settings.orDefault()
	nodes := descendants(node)
	contents, err := transformAll(nodes, worldBounds, m, settings)
	if err != nil {
		return nil, err
	}
	return rebuildChildren(node, contents, worldBounds)
}

// descendants returns all nodes below the given node, not including itself.
// Linked content can never contain a world or a layer.
func descendants(node scene.Node) []scene.Node {
	var res []scene.Node
	for _, k := range scene.Children(node) {
		k.AsTree().WalkDown(func(n tree.Node) bool {
			sn := n.(scene.Node)
			if kind := sn.Kind(); kind == scene.WorldKind || kind == scene.LayerKind {
				panic(fmt.Sprintf("linkedgroup: %v node %s inside of linked content", kind, sn.AsTree().Path()))
			}
			res = append(res, sn)
			return tree.Continue
		})
	}
	return res
}

// transformFailure records the failure of the content transform of nodes[index].
type transformFailure struct {
	index int
	err   error
}

func (f *transformFailure) Error() string { return f.err.Error() }

// transformAll transforms the content of all given nodes in parallel and
// returns the results keyed by the original node. Each worker only reads
// its own node and writes its own result slot.
func transformAll(nodes []scene.Node, worldBounds math32.Box3, m *math32.Matrix4, settings *Settings) (map[scene.Node]scene.Content, error) {
	results := make([]scene.Content, len(nodes))
	var eg errgroup.Group
	eg.SetLimit(settings.workers())
	for i, n := range nodes {
		eg.Go(func() error {
			c, err := TransformContent(n, worldBounds, m, settings)
			if err != nil {
				return &transformFailure{index: i, err: err}
			}
			results[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		f := err.(*transformFailure)
		n := nodes[f.index]
		kind := NodeTransformFailed
		if errors.Is(f.err, scene.ErrBrushOutsideWorld) {
			kind = WorldBoundsExceeded
		}
		return nil, wrapError(kind, f.err, "could not transform %v at %s", n.Kind(), n.AsTree().Path())
	}

	contents := make(map[scene.Node]scene.Content, len(nodes))
	for i, n := range nodes {
		contents[n] = results[i]
	}
	return contents, nil
}

// rebuildChildren builds new nodes with the shape of the children of the
// given node and the content from the given map. It only reads the map.
func rebuildChildren(node scene.Node, contents map[scene.Node]scene.Content, worldBounds math32.Box3) ([]scene.Node, error) {
	kids := scene.Children(node)
	res := make([]scene.Node, 0, len(kids))
	for _, k := range kids {
		nk, err := rebuildNode(k, contents, worldBounds)
		if err != nil {
			return nil, err
		}
		res = append(res, nk)
	}
	return res, nil
}

func rebuildNode(orig scene.Node, contents map[scene.Node]scene.Content, worldBounds math32.Box3) (scene.Node, error) {
	c, ok := contents[orig]
	if !ok {
		panic(fmt.Sprintf("linkedgroup: no transformed content for %v at %s", orig.Kind(), orig.AsTree().Path()))
	}
	nn := scene.NewNode(c)
	for _, k := range scene.Children(orig) {
		nk, err := rebuildNode(k, contents, worldBounds)
		if err != nil {
			return nil, err
		}
		nn.AsTree().AddChild(nk)
	}
	if !worldBounds.ContainsBox(nn.LogicalBounds()) {
		return nil, newError(WorldBoundsExceeded, "%v at %s would extend beyond world bounds %v", orig.Kind(), orig.AsTree().Path(), worldBounds)
	}
	return nn, nil
}
