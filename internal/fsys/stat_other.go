//go:build !unix

package fsys

import "io/fs"

// fillSys is a no-op on platforms without a Stat_t; the Metadata defaults
// (link count 1, uid/gid 0) stand.
func fillSys(_ fs.FileInfo, _ *Metadata) {}
