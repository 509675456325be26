// Package identity resolves numeric owner and group ids to display names.
package identity

import (
	"os/user"
	"strconv"
)

// Resolver maps uids and gids to display names. The boolean reports whether
// a name was found; on failure callers render the numeric id instead.
type Resolver interface {
	UserName(uid uint32) (string, bool)
	GroupName(gid uint32) (string, bool)
}

// OS resolves ids through the system user and group databases.
type OS struct{}

// NewOS returns the system-database Resolver.
func NewOS() *OS {
	return &OS{}
}

// UserName looks up the login name for uid.
func (*OS) UserName(uid uint32) (string, bool) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", false
	}
	return u.Username, true
}

// GroupName looks up the group name for gid.
func (*OS) GroupName(gid uint32) (string, bool) {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", false
	}
	return g.Name, true
}
