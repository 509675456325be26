// Package fsys is the filesystem metadata boundary for gols.
//
// The lister consumes the Provider interface rather than calling the os
// package directly, so traversal and formatting can be exercised against
// fakes while the OS implementation stays a thin wrapper over lstat,
// readdir and readlink.
package fsys

import (
	"io/fs"
	"os"
	"time"
)

// EntryType classifies a filesystem entry.
type EntryType int

const (
	// Regular is an ordinary file.
	Regular EntryType = iota
	// Dir is a directory.
	Dir
	// Symlink is a symbolic link.
	Symlink
	// Other covers everything else (devices, sockets, pipes, ...).
	Other
)

// Metadata is an immutable snapshot of one entry's attributes, taken at
// listing time. It is re-fetched for every entry on every visit; nothing is
// cached across calls.
type Metadata struct {
	Type    EntryType
	Perm    fs.FileMode // permission bits only
	Nlink   uint64
	UID     uint32
	GID     uint32
	Size    int64
	ModTime time.Time
}

// Provider supplies per-path metadata, raw directory listings and symlink
// targets. Stat has lstat semantics: it never follows symbolic links.
// Errors pass through unwrapped so callers can classify them.
type Provider interface {
	Stat(path string) (Metadata, error)
	ReadDirNames(dir string) ([]string, error)
	Readlink(path string) (string, error)
}

// OS is the Provider backed by the local filesystem.
type OS struct{}

// NewOS returns the local-filesystem Provider.
func NewOS() *OS {
	return &OS{}
}

// Stat returns lstat metadata for path.
func (*OS) Stat(path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}
	return fromFileInfo(info), nil
}

// ReadDirNames returns the entry names of dir in enumeration order, unsorted.
// "." and ".." are prepended to match readdir's enumeration surface (Go's
// Readdirnames omits them); the hidden-entry rule upstream filters them out
// again unless -a is set.
func (*OS) ReadDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	return append([]string{".", ".."}, names...), nil
}

// Readlink returns the target of the symbolic link at path.
func (*OS) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

func fromFileInfo(info fs.FileInfo) Metadata {
	mode := info.Mode()
	m := Metadata{
		Perm:    mode.Perm(),
		Nlink:   1,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	switch {
	case mode.IsDir():
		m.Type = Dir
	case mode&fs.ModeSymlink != 0:
		m.Type = Symlink
	case mode.IsRegular():
		m.Type = Regular
	default:
		m.Type = Other
	}

	fillSys(info, &m)
	return m
}
