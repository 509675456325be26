// Package format renders directory entries as listing output lines.
//
// The long format is a compatibility contract: field widths, the
// human-readable size scaling and the modification-time cutoffs must match
// the classic output byte for byte.
package format

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/harrison/gols/internal/fsys"
	"github.com/harrison/gols/internal/identity"
)

// julianYearSeconds is the age cutoff for the "month day year" timestamp
// format: one Julian year.
const julianYearSeconds = 31556952

// Formatter renders single entries. Human selects scaled sizes in long
// lines. Now is the clock used for the timestamp cutoff; nil means time.Now
// (tests pin it).
type Formatter struct {
	Identity identity.Resolver
	Human    bool
	Now      func() time.Time
}

// LongLine renders the long-format line for one entry (no trailing newline).
// linkTarget is the resolved symlink target, or "?" if resolution failed; it
// is ignored for non-symlinks. The second return reports whether an owner or
// group name lookup failed and the numeric id was rendered instead.
func (f *Formatter) LongLine(m fsys.Metadata, name, linkTarget string) (string, bool) {
	var b strings.Builder
	idFailed := false

	b.WriteString(typeIndicator(m.Type))
	b.WriteString(permString(m.Perm))

	fmt.Fprintf(&b, " %d", m.Nlink)

	owner, ok := f.Identity.UserName(m.UID)
	if !ok {
		owner = strconv.FormatUint(uint64(m.UID), 10)
		idFailed = true
	}
	fmt.Fprintf(&b, " %-8s", owner)

	group, ok := f.Identity.GroupName(m.GID)
	if !ok {
		group = strconv.FormatUint(uint64(m.GID), 10)
		idFailed = true
	}
	fmt.Fprintf(&b, " %-8s", group)

	if f.Human {
		fmt.Fprintf(&b, " %5s", HumanSize(m.Size))
	} else {
		fmt.Fprintf(&b, " %8d", m.Size)
	}

	fmt.Fprintf(&b, " %s", f.dateString(m.ModTime))

	if m.Type == fsys.Symlink {
		fmt.Fprintf(&b, " %s -> %s", name, linkTarget)
	} else {
		fmt.Fprintf(&b, " %s", name)
		if m.Type == fsys.Dir && !isDotName(name) {
			b.WriteByte('/')
		}
	}

	return b.String(), idFailed
}

// ShortLine renders the short-format line: the bare name, with a trailing
// slash for directories other than "." and "..".
func ShortLine(m fsys.Metadata, name string) string {
	if m.Type == fsys.Dir && !isDotName(name) {
		return name + "/"
	}
	return name
}

// HumanSize scales a byte count by repeated division by 1024 through the
// units B K M G T P E, stopping at the first unit under 1024 (or at E).
// Plain bytes render as a bare integer; scaled values get exactly one
// fractional digit plus the unit letter.
func HumanSize(size int64) string {
	units := []string{"B", "K", "M", "G", "T", "P", "E"}

	v := float64(size)
	idx := 0
	for v >= 1024 && idx < 6 {
		v /= 1024
		idx++
	}

	if idx == 0 {
		return strconv.FormatInt(size, 10)
	}
	return fmt.Sprintf("%.1f%s", v, units[idx])
}

// dateString formats a modification time. Timestamps in the future or more
// than a Julian year in the past get "month day year"; everything else gets
// "month day hour:minute". The day is space-padded to two characters.
func (f *Formatter) dateString(ts time.Time) string {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}

	if now.Unix() < ts.Unix() {
		return ts.Format("Jan _2 2006")
	}
	if now.Unix()-ts.Unix() < julianYearSeconds {
		return ts.Format("Jan _2 15:04")
	}
	return ts.Format("Jan _2 2006")
}

func typeIndicator(t fsys.EntryType) string {
	switch t {
	case fsys.Dir:
		return "d"
	case fsys.Regular:
		return "-"
	case fsys.Symlink:
		return "l"
	default:
		return "?"
	}
}

// permString renders the nine rwx characters for owner, group and other.
// Setuid, setgid and sticky bits get no special treatment.
func permString(perm fs.FileMode) string {
	var b [9]byte
	letters := [3]byte{'r', 'w', 'x'}

	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i] = letters[i%3]
		} else {
			b[i] = '-'
		}
	}
	return string(b[:])
}

func isDotName(name string) bool {
	return name == "." || name == ".."
}
