// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Kind enumerates the closed set of scene node kinds.
type Kind int32

const (
	// WorldKind is the root of a document.
	WorldKind Kind = iota

	// LayerKind is a top-level organizational container below the world.
	LayerKind

	// GroupKind is a transformable, linkable container of content.
	GroupKind

	// EntityKind is a point entity, or a brush entity when it has children.
	EntityKind

	// BrushKind is a convex solid.
	BrushKind

	// PatchKind is a curved surface defined by a grid of control points.
	PatchKind
)

func (k Kind) String() string {
	switch k {
	case WorldKind:
		return "World"
	case LayerKind:
		return "Layer"
	case GroupKind:
		return "Group"
	case EntityKind:
		return "Entity"
	case BrushKind:
		return "Brush"
	case PatchKind:
		return "Patch"
	}
	return "Kind(unknown)"
}
