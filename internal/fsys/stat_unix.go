//go:build unix

package fsys

import (
	"io/fs"
	"syscall"
)

// fillSys extracts link count and ownership from the platform stat structure.
func fillSys(info fs.FileInfo, m *Metadata) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	m.Nlink = uint64(st.Nlink)
	m.UID = uint32(st.Uid)
	m.GID = uint32(st.Gid)
}
