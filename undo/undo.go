// Copyright (c) 2021, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a manager of undo / redo records for changes
// that replace the children of tree nodes.
package undo

import (
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/linked/tree"
)

// Swap records the replacement of all children of a parent node.
type Swap struct {

	// Parent is the node whose children were replaced.
	Parent tree.Node

	// Before are the children of Parent before the change.
	Before []tree.Node

	// After are the children of Parent after the change.
	After []tree.Node
}

// Record is one undo record, associated with one action that replaced
// the children of one or more nodes.
type Record struct {

	// Action is a description of the action, for the user to see.
	Action string

	// Swaps are the replacements made by the action, in the order they were applied.
	Swaps []Swap
}

// Manager is the undo manager, managing the undo / redo process.
type Manager struct {

	// Index is the current index in the records: this is the record that
	// will be undone if the user hits undo. It is -1 if there is nothing to undo.
	Index int

	// Records is the list of saved records.
	Records []*Record

	// Mu protects updates.
	Mu sync.Mutex
}

// NewManager returns a new empty [Manager].
func NewManager() *Manager {
	return &Manager{Index: -1}
}

// Save saves a new record as the next one to be undone, discarding
// any records that were undone before.
func (um *Manager) Save(action string, swaps ...Swap) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index >= len(um.Records) {
		slog.Error("undo.Manager: index out of range", "index", um.Index, "records", len(um.Records))
		um.Index = len(um.Records) - 1
	}
	um.Records = append(um.Records[:um.Index+1], &Record{Action: action, Swaps: swaps})
	um.Index = len(um.Records) - 1
}

// HasUndoAvail returns true if there is at least one undo record available.
// This does NOT get the lock: it may rarely be inaccurate.
func (um *Manager) HasUndoAvail() bool {
	return um.Index >= 0
}

// HasRedoAvail returns true if there is at least one redo record available.
// This does NOT get the lock: it may rarely be inaccurate.
func (um *Manager) HasRedoAvail() bool {
	return um.Index < len(um.Records)-1
}

// Undo restores the children replaced by the record at the current index
// and moves the index to the previous record. It returns the action of the
// undone record, or "" if there was nothing to undo.
func (um *Manager) Undo() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index < 0 {
		return ""
	}
	rec := um.Records[um.Index]
	for _, s := range slices.Backward(rec.Swaps) {
		tree.SetChildren(s.Parent, s.Before)
	}
	um.Index--
	return rec.Action
}

// Redo applies the record at the next index again, returning its action,
// or "" if already at the end of the saved records.
func (um *Manager) Redo() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index >= len(um.Records)-1 {
		return ""
	}
	um.Index++
	rec := um.Records[um.Index]
	for _, s := range rec.Swaps {
		tree.SetChildren(s.Parent, s.After)
	}
	return rec.Action
}

// Reset removes all records.
func (um *Manager) Reset() {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	um.Records = nil
	um.Index = -1
}
