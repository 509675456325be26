package status

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{
			name: "bare ENOENT",
			err:  syscall.ENOENT,
			want: NotFound,
		},
		{
			name: "wrapped ENOENT",
			err:  &fs.PathError{Op: "lstat", Path: "/missing", Err: syscall.ENOENT},
			want: NotFound,
		},
		{
			name: "bare EACCES",
			err:  syscall.EACCES,
			want: PermissionDenied,
		},
		{
			name: "wrapped EACCES",
			err:  &fs.PathError{Op: "open", Path: "/locked", Err: syscall.EACCES},
			want: PermissionDenied,
		},
		{
			name: "EPERM counts as permission denied",
			err:  syscall.EPERM,
			want: PermissionDenied,
		},
		{
			name: "other system error",
			err:  &fs.PathError{Op: "open", Path: "/dev/thing", Err: syscall.EIO},
			want: OtherSystem,
		},
		{
			name: "plain error",
			err:  errors.New("something odd"),
			want: OtherSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestTrackerCode(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		want       int
	}{
		{
			name:       "clean run",
			categories: nil,
			want:       0,
		},
		{
			name:       "not found",
			categories: []Category{NotFound},
			want:       72,
		},
		{
			name:       "permission denied",
			categories: []Category{PermissionDenied},
			want:       80,
		},
		{
			name:       "not found and permission denied",
			categories: []Category{NotFound, PermissionDenied},
			want:       88,
		},
		{
			name:       "other system error",
			categories: []Category{OtherSystem},
			want:       96,
		},
		{
			name:       "identity lookup alone",
			categories: []Category{IdentityLookup},
			want:       96,
		},
		{
			name:       "identity lookup does not clear earlier bits",
			categories: []Category{NotFound, IdentityLookup},
			want:       72 | 96,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(&bytes.Buffer{})
			for _, cat := range tt.categories {
				switch cat {
				case NotFound:
					tr.Report("cannot access", "/x", syscall.ENOENT)
				case PermissionDenied:
					tr.Report("cannot access", "/x", syscall.EACCES)
				case OtherSystem:
					tr.Report("cannot access", "/x", syscall.EIO)
				case IdentityLookup:
					tr.RecordIdentityFailure()
				}
			}
			if got := tr.Code(); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReportDiagnosticFormat(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(&buf)

	err := &fs.PathError{Op: "lstat", Path: "/tmp/missing", Err: syscall.ENOENT}
	tr.Report("cannot access", "/tmp/missing", err)

	want := fmt.Sprintf("gols: cannot access /tmp/missing: %v\n", syscall.ENOENT)
	if buf.String() != want {
		t.Errorf("diagnostic = %q, want %q", buf.String(), want)
	}
}

func TestReportUnwrapsToInnermostCause(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(&buf)

	wrapped := fmt.Errorf("reading directory: %w",
		&fs.PathError{Op: "open", Path: "/locked", Err: syscall.EACCES})
	tr.Report("cannot open directory", "/locked", wrapped)

	out := buf.String()
	if strings.Contains(out, "reading directory") || strings.Contains(out, "open /locked") {
		t.Errorf("diagnostic should contain only the innermost cause, got %q", out)
	}
	if !strings.Contains(out, syscall.EACCES.Error()) {
		t.Errorf("diagnostic missing system error text, got %q", out)
	}
}

func TestIdentityFailurePrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracker(&buf)

	tr.RecordIdentityFailure()

	if buf.Len() != 0 {
		t.Errorf("identity failure should not print a diagnostic, got %q", buf.String())
	}
	if tr.Code() != 96 {
		t.Errorf("Code() = %d, want 96", tr.Code())
	}
}

func TestEntryCounter(t *testing.T) {
	tr := NewTracker(&bytes.Buffer{})

	if tr.Entries() != 0 {
		t.Fatalf("fresh tracker Entries() = %d, want 0", tr.Entries())
	}
	for i := 0; i < 5; i++ {
		tr.AddEntry()
	}
	if tr.Entries() != 5 {
		t.Errorf("Entries() = %d, want 5", tr.Entries())
	}
}
