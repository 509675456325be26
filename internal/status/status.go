// Package status accumulates the run-wide exit status for gols.
//
// Failures are recorded as tagged categories during the run and folded into
// the numeric exit bitmask only at the process-exit boundary. The bitmask
// contract: 64 is set on any error, 8 for not-found, 16 for permission
// denied, 32 for other system errors, and a failed user/group lookup
// contributes the composite 96 (64|32).
package status

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Category identifies one class of failure observed during a run.
type Category int

const (
	// NotFound means a path did not exist.
	NotFound Category = iota
	// PermissionDenied means access to a path was refused.
	PermissionDenied
	// OtherSystem covers any other metadata or enumeration failure.
	OtherSystem
	// IdentityLookup means a uid or gid had no resolvable name.
	IdentityLookup
)

// Exit status bits. These are a compatibility contract; see Code.
const (
	bitGeneric    = 1 << 6 // set on any error
	bitNotFound   = 1 << 3
	bitPermission = 1 << 4
	bitOther      = 1 << 5
)

// Tracker accumulates failure categories and the visited-entry count for a
// single run. It is single-owner state passed by reference; the run is fully
// sequential, so no locking is needed.
type Tracker struct {
	out     io.Writer
	prog    string
	seen    map[Category]bool
	entries int
}

// NewTracker creates a Tracker whose diagnostics are written to out.
// Diagnostics share the listing output stream so they interleave with normal
// output in the order encountered.
func NewTracker(out io.Writer) *Tracker {
	return &Tracker{
		out:  out,
		prog: "gols",
		seen: make(map[Category]bool),
	}
}

// Classify maps an error to its failure category.
func Classify(err error) Category {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return OtherSystem
	}
}

// Report prints a diagnostic line for a failed operation and records its
// category. Format: "gols: <action> <path>: <cause>".
func (t *Tracker) Report(action, path string, err error) {
	fmt.Fprintf(t.out, "%s: %s %s: %v\n", t.prog, action, path, rootCause(err))
	t.seen[Classify(err)] = true
}

// RecordIdentityFailure records a failed uid/gid name lookup. The entry is
// still rendered with the numeric id, so no diagnostic line is printed.
func (t *Tracker) RecordIdentityFailure() {
	t.seen[IdentityLookup] = true
}

// AddEntry counts one visited entry for count-only mode.
func (t *Tracker) AddEntry() {
	t.entries++
}

// Entries returns the number of entries visited so far.
func (t *Tracker) Entries() int {
	return t.entries
}

// Code folds the recorded categories into the process exit bitmask.
// IdentityLookup contributes 96, reusing the generic and other-system bits;
// the aliasing is part of the exit-status contract and is preserved as-is.
func (t *Tracker) Code() int {
	code := 0
	for cat := range t.seen {
		code |= bitGeneric
		switch cat {
		case NotFound:
			code |= bitNotFound
		case PermissionDenied:
			code |= bitPermission
		case OtherSystem:
			code |= bitOther
		case IdentityLookup:
			code |= bitGeneric | bitOther
		}
	}
	return code
}

// rootCause unwraps to the innermost error so diagnostics show the bare
// system error text (e.g. "permission denied") instead of an os.PathError
// chain that would repeat the path already present in the message.
func rootCause(err error) error {
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
}
