// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package console holds the client-side state of an admin resource screen.

A [Session] tracks which tab is shown, the editor, in-flight saves and flag
toggles, and the local copies of the active and trashed lists. It calls the
admin API through a [Remote] and merges the returned records by id.

Reordering is applied locally before the call. When the call fails the records
go back to their previous order and the list is marked stale until the next
[Session.Load].
*/
package console

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/pkg/slice"
)

// Tab selects the list shown.
type Tab int

const (
	TabActive Tab = iota
	TabTrash
)

// EditorMode is the state of the slide-over editor.
type EditorMode int

const (
	EditorClosed EditorMode = iota
	EditorNew
	EditorEdit
)

var (
	// ErrUnknownRecord is returned when an id is not in the local list.
	ErrUnknownRecord = errors.New("console: record not in list")
	// ErrCannotSave is returned when the editor is closed or a save is in flight.
	ErrCannotSave = errors.New("console: save not possible")
	// ErrToggleInFlight is returned while a flag change of the same row is pending.
	ErrToggleInFlight = errors.New("console: flag change already in flight")
	// ErrNothingToConfirm is returned when no delete was requested.
	ErrNothingToConfirm = errors.New("console: no delete pending")
)

// Editor is the slide-over form.
type Editor[T resource.Entity] struct {
	Mode   EditorMode
	Record T
	Form   Form
}

// View is a snapshot of the session state.
type View[T resource.Entity] struct {
	Tab           Tab
	Active        []T
	Trash         []T
	Loading       bool
	Err           error
	Stale         bool
	Editor        Editor[T]
	Saving        bool
	Toggling      []string
	PendingDelete string
}

// Session is the state of one admin resource screen. It is safe for concurrent use.
type Session[T resource.Entity] struct {
	mu     sync.Mutex
	remote Remote[T]
	config Config
	logger *slog.Logger

	tab           Tab
	active        []T
	trash         []T
	loading       bool
	err           error
	stale         bool
	editor        Editor[T]
	saving        bool
	toggling      map[string]bool
	pendingDelete string
}

// NewSession creates a session on the active tab with the editor closed.
func NewSession[T resource.Entity](remote Remote[T], config Config, logger *slog.Logger) *Session[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session[T]{
		remote:   remote,
		config:   config,
		logger:   logger.With(slog.String("screen", config.Label)),
		toggling: make(map[string]bool),
	}
}

// View returns a copy of the current state.
func (session *Session[T]) View() View[T] {
	session.mu.Lock()
	defer session.mu.Unlock()

	toggling := make([]string, 0, len(session.toggling))
	for id := range session.toggling {
		toggling = append(toggling, id)
	}
	slices.Sort(toggling)

	editor := session.editor
	if editor.Form != nil {
		editor.Form = editor.Form.Clone()
	}

	return View[T]{
		Tab:           session.tab,
		Active:        slices.Clone(session.active),
		Trash:         slices.Clone(session.trash),
		Loading:       session.loading,
		Err:           session.err,
		Stale:         session.stale,
		Editor:        editor,
		Saving:        session.saving,
		Toggling:      toggling,
		PendingDelete: session.pendingDelete,
	}
}

// # Lists

// Load fetches the active list. On failure the list is emptied and the error kept.
func (session *Session[T]) Load(context context.Context, query string) error {
	session.setLoading(true)
	records, err := session.remote.List(context, query)

	session.mu.Lock()
	defer session.mu.Unlock()

	session.loading = false
	session.err = err
	if err != nil {
		session.active = nil
		return err
	}
	session.active = records
	session.stale = false
	return nil
}

// SelectTab switches tabs. The trash is refetched every time it is selected;
// the active list is not.
func (session *Session[T]) SelectTab(context context.Context, tab Tab) error {
	session.mu.Lock()
	session.tab = tab
	session.mu.Unlock()

	if tab != TabTrash {
		return nil
	}

	session.setLoading(true)
	records, err := session.remote.ListTrashed(context)

	session.mu.Lock()
	defer session.mu.Unlock()

	session.loading = false
	session.err = err
	if err != nil {
		session.trash = nil
		return err
	}
	session.trash = records
	return nil
}

// # Editor

// OpenNew opens the editor with the defaults of the resource.
func (session *Session[T]) OpenNew() {
	session.mu.Lock()
	defer session.mu.Unlock()

	var zero T
	session.editor = Editor[T]{Mode: EditorNew, Record: zero, Form: session.config.Defaults.Clone()}
}

// OpenEdit opens the editor for the active record id.
func (session *Session[T]) OpenEdit(id string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	index := indexOf(session.active, id)
	if index < 0 {
		return ErrUnknownRecord
	}

	form, err := FormFrom(session.active[index])
	if err != nil {
		return err
	}
	session.editor = Editor[T]{Mode: EditorEdit, Record: session.active[index], Form: form}
	return nil
}

// SetField changes one editor input.
func (session *Session[T]) SetField(field string, value any) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.editor.Mode == EditorClosed {
		return
	}
	session.editor.Form[field] = value
}

// CloseEditor discards the form.
func (session *Session[T]) CloseEditor() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.editor = Editor[T]{}
}

// CanSave reports whether the save action is enabled.
func (session *Session[T]) CanSave() bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	return session.canSave()
}

func (session *Session[T]) canSave() bool {
	return session.editor.Mode != EditorClosed &&
		!session.saving &&
		strings.TrimSpace(session.editor.Form.Text(session.config.Required)) != ""
}

// Save creates or updates the edited record. On success the returned record
// replaces its local copy (or is appended) and the editor closes. On failure
// the editor stays open.
func (session *Session[T]) Save(context context.Context) (T, error) {
	var zero T

	session.mu.Lock()
	if !session.canSave() {
		err := ErrCannotSave
		if session.editor.Mode != EditorClosed && !session.saving {
			err = session.config.errRequired()
		}
		session.mu.Unlock()
		return zero, err
	}
	editor := session.editor
	payload, err := session.config.payload(editor.Form)
	if err != nil {
		session.mu.Unlock()
		return zero, err
	}
	session.saving = true
	session.mu.Unlock()

	var record T
	if editor.Mode == EditorEdit {
		record, err = session.remote.Update(context, editor.Record.EntityID(), payload)
	} else {
		record, err = session.remote.Create(context, payload)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.saving = false
	if err != nil {
		return zero, err
	}
	session.active = upsert(session.active, record)
	session.editor = Editor[T]{}
	return record, nil
}

// # Row Actions

// Duplicate copies a record and appends the copy.
func (session *Session[T]) Duplicate(context context.Context, id string) (T, error) {
	record, err := session.remote.Duplicate(context, id)
	if err != nil {
		var zero T
		return zero, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.active = upsert(session.active, record)
	return record, nil
}

// Move drags the active record at from to position to and saves the new order.
// A failed save puts the records back in their previous order and marks the
// list stale. Records merged while the save was pending are kept.
func (session *Session[T]) Move(context context.Context, from, to int) error {
	session.mu.Lock()
	if from < 0 || to < 0 || from >= len(session.active) || to >= len(session.active) {
		session.mu.Unlock()
		return ErrUnknownRecord
	}

	previous := slice.Map(session.active, func(record T) string { return record.EntityID() })
	moved := session.active[from]
	session.active = slices.Insert(slices.Delete(slices.Clone(session.active), from, from+1), to, moved)

	ids := slice.Map(session.active, func(record T) string { return record.EntityID() })
	session.mu.Unlock()

	err := session.remote.Reorder(context, ids)

	session.mu.Lock()
	defer session.mu.Unlock()

	if err != nil {
		session.active = restoreOrder(session.active, previous)
		session.stale = true
		session.logger.WarnContext(context, "console_reorder_reverted", slog.Any("error", err))
		return err
	}
	return nil
}

// RequestDelete asks for confirmation before trashing id.
func (session *Session[T]) RequestDelete(id string) error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if indexOf(session.active, id) < 0 {
		return ErrUnknownRecord
	}
	session.pendingDelete = id
	return nil
}

// CancelDelete drops the pending confirmation.
func (session *Session[T]) CancelDelete() {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.pendingDelete = ""
}

// ConfirmDelete trashes the pending record and removes it from the active
// list. The trash list is not touched; it is only filled by a fetch.
func (session *Session[T]) ConfirmDelete(context context.Context) error {
	session.mu.Lock()
	id := session.pendingDelete
	session.pendingDelete = ""
	session.mu.Unlock()

	if id == "" {
		return ErrNothingToConfirm
	}

	if err := session.remote.SoftDelete(context, id); err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.active = remove(session.active, id)
	return nil
}

// Restore moves a record from the trash list to the end of the active list.
func (session *Session[T]) Restore(context context.Context, id string) (T, error) {
	record, err := session.remote.Restore(context, id)
	if err != nil {
		var zero T
		return zero, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.trash = remove(session.trash, id)
	session.active = upsert(session.active, record)
	return record, nil
}

// ToggleFlag inverts the flag of an active record. A second toggle of the
// same row fails with [ErrToggleInFlight] until the first returns.
func (session *Session[T]) ToggleFlag(context context.Context, id string) (T, error) {
	var zero T

	session.mu.Lock()
	if session.toggling[id] {
		session.mu.Unlock()
		return zero, ErrToggleInFlight
	}
	index := indexOf(session.active, id)
	if index < 0 {
		session.mu.Unlock()
		return zero, ErrUnknownRecord
	}
	value := !session.active[index].FlagValue()
	session.toggling[id] = true
	session.mu.Unlock()

	record, err := session.remote.SetFlag(context, id, value)

	session.mu.Lock()
	defer session.mu.Unlock()

	delete(session.toggling, id)
	if err != nil {
		return zero, err
	}
	session.active = upsert(session.active, record)
	return record, nil
}

// # Helpers

func (session *Session[T]) setLoading(loading bool) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.loading = loading
}

func indexOf[T resource.Entity](records []T, id string) int {
	return slices.IndexFunc(records, func(record T) bool { return record.EntityID() == id })
}

// upsert replaces the record with the same id or appends it.
func upsert[T resource.Entity](records []T, record T) []T {
	if index := indexOf(records, record.EntityID()); index >= 0 {
		records = slices.Clone(records)
		records[index] = record
		return records
	}
	return append(slices.Clip(records), record)
}

// restoreOrder sorts records by their position in order. Records missing
// from order follow in their current sequence.
func restoreOrder[T resource.Entity](records []T, order []string) []T {
	rank := make(map[string]int, len(order))
	for position, id := range order {
		rank[id] = position
	}

	known := make([]T, 0, len(records))
	var added []T
	for _, record := range records {
		if _, ok := rank[record.EntityID()]; ok {
			known = append(known, record)
		} else {
			added = append(added, record)
		}
	}
	slices.SortStableFunc(known, func(a, b T) int {
		return cmp.Compare(rank[a.EntityID()], rank[b.EntityID()])
	})
	return append(known, added...)
}

func remove[T resource.Entity](records []T, id string) []T {
	return slices.DeleteFunc(slices.Clone(records), func(record T) bool { return record.EntityID() == id })
}
