// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"

	"cogentcore.org/linked/math32"
	"cogentcore.org/linked/scene"
)

// TransformContent returns a transformed copy of the content of the given
// node, leaving the node itself unchanged. Only brushes can fail. World and
// Layer nodes have no content and can never be part of linked content, so
// passing one is a programming error that panics. Nil settings use the
// defaults.
func TransformContent(n scene.Node, worldBounds math32.Box3, m *math32.Matrix4, settings *Settings) (scene.Content, error) {
	settings = settings.orDefault()
	switch n := n.(type) {
	case *scene.Group:
		return n.Data.Transform(m), nil
	case *scene.Entity:
		return n.Data.Transform(m, settings.UpdateAngleAfterTransform), nil
	case *scene.Brush:
		b, err := n.Data.Transform(worldBounds, m, settings.LockTextures)
		if err != nil {
			return nil, err
		}
		return b, nil
	case *scene.Patch:
		return n.Data.Transform(m), nil
	}
	panic(fmt.Sprintf("linkedgroup: %v node %s can not be part of linked content", n.Kind(), n.AsTree().Path()))
}
