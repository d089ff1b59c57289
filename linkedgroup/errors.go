// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"fmt"

	"cogentcore.org/linked/base/errors"
)

// Kind classifies the errors reported by this package.
type Kind int32

const (
	// TransformationNotInvertible means the placement of a source group is singular.
	TransformationNotInvertible Kind = iota + 1

	// WorldBoundsExceeded means synchronized content would leave the world bounds.
	WorldBoundsExceeded

	// NodeTransformFailed means transforming the content of a node failed,
	// typically because a brush became degenerate.
	NodeTransformFailed

	// InconsistentLinkedGroupStructure means a lockstep walk of two
	// supposedly linked subtrees found a shape or kind mismatch.
	InconsistentLinkedGroupStructure

	// MalformedTransformationIssue is a load-time diagnostic for a group
	// transformation that was replaced with the identity.
	MalformedTransformationIssue

	// InvalidContainerID is a load-time diagnostic for a node whose container
	// could not be found and that was placed in the default layer.
	InvalidContainerID

	// RecursiveLinkedGroup is a load-time diagnostic for a group nested inside
	// another instance of its own link set, which was unlinked.
	RecursiveLinkedGroup
)

func (k Kind) String() string {
	switch k {
	case TransformationNotInvertible:
		return "TransformationNotInvertible"
	case WorldBoundsExceeded:
		return "WorldBoundsExceeded"
	case NodeTransformFailed:
		return "NodeTransformFailed"
	case InconsistentLinkedGroupStructure:
		return "InconsistentLinkedGroupStructure"
	case MalformedTransformationIssue:
		return "MalformedTransformationIssue"
	case InvalidContainerID:
		return "InvalidContainerID"
	case RecursiveLinkedGroup:
		return "RecursiveLinkedGroup"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Sentinel errors, one per [Kind], for use with [errors.Is].
var (
	ErrTransformationNotInvertible      = &Error{Kind: TransformationNotInvertible}
	ErrWorldBoundsExceeded              = &Error{Kind: WorldBoundsExceeded}
	ErrNodeTransformFailed              = &Error{Kind: NodeTransformFailed}
	ErrInconsistentLinkedGroupStructure = &Error{Kind: InconsistentLinkedGroupStructure}
	ErrMalformedTransformation          = &Error{Kind: MalformedTransformationIssue}
	ErrInvalidContainerID               = &Error{Kind: InvalidContainerID}
	ErrRecursiveLinkedGroup             = &Error{Kind: RecursiveLinkedGroup}
)

// Error is an error of a given [Kind] with a human readable message
// and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// newError returns a new [Error] with a formatted message.
func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// wrapError returns a new [Error] wrapping the given cause.
func wrapError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an [*Error] of the same kind, so that
// errors.Is(err, ErrWorldBoundsExceeded) matches any such error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first [*Error] in the tree of err, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
