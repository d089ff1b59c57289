// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/scene"
	"cogentcore.org/linked/tree"
)

// Placement describes where a loaded node belongs in a document.
type Placement struct {

	// Node is the loaded node, with its own children already attached.
	Node scene.Node

	// ContainerID is the persistent id of the layer or group that contains
	// the node, or 0 for the default layer. It is ignored for layers.
	ContainerID int
}

// Assemble adds the given loaded nodes to the world in order. Layers are
// added to the world, and other nodes to the layer or group with their
// container id. A node whose container can not be found, or would end up
// inside of the node itself, is added to the default layer instead. A
// layer or group that repeats a persistent id that is already in use has
// its id cleared. The returned errors are the diagnostics of these
// corrections, each of which has been logged as a warning.
func Assemble(world *scene.World, placements []Placement) []error {
	var errs []error
	containers := map[int]scene.Node{}
	register := func(n tree.Node) bool {
		id := persistentID(n)
		if id == nil || *id == 0 {
			return tree.Continue
		}
		if c, has := containers[*id]; has && c != n {
			errs = append(errs, errors.Warn(newError(InvalidContainerID,
				"%v at %s has the duplicate persistent id %d, which was cleared", n.(scene.Node).Kind(), n.AsTree().Path(), *id), "kind", InvalidContainerID))
			*id = 0
			return tree.Continue
		}
		containers[*id] = n.(scene.Node)
		return tree.Continue
	}
	world.WalkDown(register)
	for _, p := range placements {
		p.Node.AsTree().WalkDown(register)
	}

	for _, p := range placements {
		if p.Node.Kind() == scene.LayerKind {
			world.AddChild(p.Node)
			continue
		}
		c, ok := containers[p.ContainerID]
		switch {
		case p.ContainerID == 0:
			c = DefaultLayer(world)
		case !ok || contains(p.Node, c):
			errs = append(errs, errors.Warn(newError(InvalidContainerID,
				"%v has the invalid container id %d and was added to the default layer", p.Node.Kind(), p.ContainerID), "kind", InvalidContainerID))
			c = DefaultLayer(world)
		}
		c.AsTree().AddChild(p.Node)
	}
	return errs
}

// DefaultLayer returns the first layer of the world, adding
// one if there is none.
func DefaultLayer(world *scene.World) *scene.Layer {
	for _, k := range world.Children {
		if l, ok := k.(*scene.Layer); ok {
			return l
		}
	}
	return scene.NewLayer("Default Layer", world)
}

func persistentID(n tree.Node) *int {
	switch n := n.(type) {
	case *scene.Layer:
		return &n.PersistentID
	case *scene.Group:
		return &n.PersistentID
	}
	return nil
}

// contains returns whether c is n or inside of n.
func contains(n, c scene.Node) bool {
	return !c.AsTree().WalkUp(func(k tree.Node) bool {
		return k != n
	})
}
