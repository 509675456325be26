// Package lister orchestrates directory traversal and entry listing.
//
// A directory's own entries are always fully listed before any recursion;
// subdirectories discovered during the listing are recorded in enumeration
// order and descended into afterwards. Every failure is local: it is
// reported through the status tracker and traversal continues with the next
// sibling or directory.
package lister

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/gols/internal/format"
	"github.com/harrison/gols/internal/fsys"
	"github.com/harrison/gols/internal/logger"
	"github.com/harrison/gols/internal/status"
)

// Options are the per-invocation listing mode flags.
type Options struct {
	Long      bool
	All       bool
	Recursive bool
	CountOnly bool
}

// Lister walks paths and renders entries. All collaborators are injected;
// the lister itself owns no state beyond them and runs fully sequentially.
type Lister struct {
	FS     fsys.Provider
	Format *format.Formatter
	Status *status.Tracker
	Out    io.Writer
	Log    *logger.Console
	Opts   Options
}

// Run lists each argument in order; with no arguments it lists the current
// directory. Directory arguments get a "path:" header when more than one
// argument is given, with a blank line between arguments. In count-only
// mode the single total is printed at the end.
func (l *Lister) Run(paths []string) {
	if len(paths) == 0 {
		l.ListDir(".")
	} else {
		for i, arg := range paths {
			meta, err := l.FS.Stat(arg)
			if err != nil {
				l.Status.Report("cannot access", arg, err)
				continue
			}

			if meta.Type == fsys.Dir {
				if len(paths) > 1 {
					fmt.Fprintf(l.Out, "%s:\n", arg)
				}
				l.ListDir(arg)
				if i+1 < len(paths) {
					fmt.Fprintln(l.Out)
				}
			} else {
				l.listEntry(arg, arg)
			}
		}
	}

	if l.Opts.CountOnly {
		fmt.Fprintf(l.Out, "%d\n", l.Status.Entries())
	}
}

// ListDir lists the immediate entries of dir in enumeration order. When
// recursion is enabled it descends into each recorded subdirectory only
// after the listing is complete.
func (l *Lister) ListDir(dir string) {
	names, err := l.FS.ReadDirNames(dir)
	if err != nil {
		l.Status.Report("cannot open directory", dir, err)
		return
	}
	l.Log.Debugf("listing %s: %d raw entries", dir, len(names))

	var subdirs []string
	for _, name := range names {
		if !l.Opts.All && strings.HasPrefix(name, ".") {
			continue
		}

		full := joinPath(dir, name)
		l.listEntry(full, name)

		if l.Opts.Recursive && name != "." && name != ".." {
			meta, err := l.FS.Stat(full)
			if err != nil {
				l.Status.Report("cannot access", full, err)
				continue
			}
			if meta.Type == fsys.Dir {
				subdirs = append(subdirs, full)
			}
		}
	}

	if len(subdirs) > 0 {
		l.Log.Debugf("descending into %d subdirectories of %s", len(subdirs), dir)
	}
	for _, sub := range subdirs {
		fmt.Fprintln(l.Out)
		fmt.Fprintf(l.Out, "%s:\n", sub)
		l.ListDir(sub)
	}
}

// listEntry lists a single entry. full is the path handed to the metadata
// provider; name is the bare display name.
func (l *Lister) listEntry(full, name string) {
	if l.Opts.CountOnly {
		l.Status.AddEntry()
		return
	}

	meta, err := l.FS.Stat(full)
	if err != nil {
		l.Status.Report("cannot access", full, err)
		return
	}

	if !l.Opts.Long {
		fmt.Fprintln(l.Out, format.ShortLine(meta, name))
		return
	}

	var target string
	if meta.Type == fsys.Symlink {
		target, err = l.FS.Readlink(full)
		if err != nil {
			// Degraded render only; an unreadable target sets no error bit.
			target = "?"
		}
	}

	line, idFailed := l.Format.LongLine(meta, name, target)
	fmt.Fprintln(l.Out, line)
	if idFailed {
		l.Status.RecordIdentityFailure()
	}
}

// joinPath builds child paths as dir + "/" + name, mirroring the
// snprintf("%s/%s") of classic ls so recursive headers keep prefixes
// like "./sub" instead of the cleaned "sub".
func joinPath(dir, name string) string {
	return dir + "/" + name
}
