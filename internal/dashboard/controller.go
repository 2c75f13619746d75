// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dashboard keeps the client's list of entries and the filtered view
// shown to the user in sync with the current filter.
//
// The Controller is not safe for concurrent use. The terminal UI owns it and
// only touches it from its update loop; fetches run elsewhere and report back
// through Loaded.
package dashboard

import (
	"errors"
	"slices"

	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/models"
)

// State is the lifecycle state of the dashboard.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrNotReady is returned by mutations attempted outside StateReady.
var ErrNotReady = errors.New("dashboard is not ready")

// Controller holds all entries, the active filter and the filtered view.
type Controller struct {
	state   State
	err     error
	entries []models.Entry
	spec    models.FilterSpec
	match   diary.Matcher
	view    []models.Entry
}

// NewController returns a controller in StateLoading with an empty filter.
func NewController() *Controller {
	match, _ := diary.CompileFilter(models.FilterSpec{})
	return &Controller{state: StateLoading, match: match, view: []models.Entry{}}
}

// BeginLoad enters StateLoading. Entries and filter are kept so a failed
// reload does not lose the previous view.
func (c *Controller) BeginLoad() {
	c.state = StateLoading
	c.err = nil
}

// Loaded completes a fetch started with BeginLoad. A non-nil fetchErr moves
// the controller to StateError and is returned unchanged.
func (c *Controller) Loaded(entries []models.Entry, fetchErr error) error {
	if c.state != StateLoading {
		return ErrNotReady
	}
	if fetchErr != nil {
		c.state = StateError
		c.err = fetchErr
		return fetchErr
	}

	c.state = StateReady
	c.setEntries(entries)
	return nil
}

func (c *Controller) State() State { return c.state }

// Err returns the fetch error that moved the controller to StateError.
func (c *Controller) Err() error { return c.err }

// Filter returns the active filter.
func (c *Controller) Filter() models.FilterSpec { return c.spec }

// Entries returns all loaded entries, ignoring the filter.
func (c *Controller) Entries() []models.Entry {
	return slices.Clone(c.entries)
}

// View returns the entries matching the active filter.
func (c *Controller) View() []models.Entry {
	return slices.Clone(c.view)
}

// Find returns the loaded entry with the given id.
func (c *Controller) Find(id string) (models.Entry, bool) {
	i := slices.IndexFunc(c.entries, func(e models.Entry) bool { return e.ID == id })
	if i < 0 {
		return models.Entry{}, false
	}
	return c.entries[i], true
}

// SetEntries replaces the whole entry list.
func (c *Controller) SetEntries(entries []models.Entry) error {
	if c.state != StateReady {
		return ErrNotReady
	}
	c.setEntries(entries)
	return nil
}

// Upsert adds entry, or replaces the loaded entry with the same id.
func (c *Controller) Upsert(entry models.Entry) error {
	if c.state != StateReady {
		return ErrNotReady
	}

	next := slices.Clone(c.entries)
	if i := slices.IndexFunc(next, func(e models.Entry) bool { return e.ID == entry.ID }); i >= 0 {
		next[i] = entry
	} else {
		next = append(next, entry)
	}
	c.setEntries(next)
	return nil
}

// Remove drops the entry with the given id. Unknown ids are ignored.
func (c *Controller) Remove(id string) error {
	if c.state != StateReady {
		return ErrNotReady
	}
	c.setEntries(slices.DeleteFunc(slices.Clone(c.entries), func(e models.Entry) bool { return e.ID == id }))
	return nil
}

// SetFilter validates spec and makes it the active filter. On a
// *diary.ValidationError the previous filter and view stay in place.
func (c *Controller) SetFilter(spec models.FilterSpec) error {
	match, err := diary.CompileFilter(spec)
	if err != nil {
		return err
	}
	c.spec = spec
	c.match = match
	c.recompute()
	return nil
}

// ClearFilter resets to the empty filter, which matches every entry.
func (c *Controller) ClearFilter() {
	_ = c.SetFilter(models.FilterSpec{})
}

func (c *Controller) setEntries(entries []models.Entry) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, newestFirst)
	c.entries = sorted
	c.recompute()
}

func (c *Controller) recompute() {
	c.view = diary.Apply(c.entries, c.match)
}

// newestFirst orders by entry date, then creation time, both descending.
func newestFirst(a, b models.Entry) int {
	if n := b.EntryDate.Compare(a.EntryDate.Time); n != 0 {
		return n
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}
