package identity

import (
	"os/user"
	"strconv"
	"testing"
)

func TestUserNameForCurrentUser(t *testing.T) {
	current, err := user.Current()
	if err != nil {
		t.Skipf("no current user available: %v", err)
	}
	uid, err := strconv.ParseUint(current.Uid, 10, 32)
	if err != nil {
		t.Skipf("non-numeric uid %q: %v", current.Uid, err)
	}

	name, ok := NewOS().UserName(uint32(uid))
	if !ok {
		t.Fatalf("UserName(%d) failed for the current user", uid)
	}
	if name != current.Username {
		t.Errorf("UserName(%d) = %q, want %q", uid, name, current.Username)
	}
}

func TestGroupNameForCurrentGroup(t *testing.T) {
	current, err := user.Current()
	if err != nil {
		t.Skipf("no current user available: %v", err)
	}
	gid, err := strconv.ParseUint(current.Gid, 10, 32)
	if err != nil {
		t.Skipf("non-numeric gid %q: %v", current.Gid, err)
	}

	group, err := user.LookupGroupId(current.Gid)
	if err != nil {
		t.Skipf("current group not resolvable: %v", err)
	}

	name, ok := NewOS().GroupName(uint32(gid))
	if !ok {
		t.Fatalf("GroupName(%d) failed for the current group", gid)
	}
	if name != group.Name {
		t.Errorf("GroupName(%d) = %q, want %q", gid, name, group.Name)
	}
}

func TestUnknownIDsFallBack(t *testing.T) {
	// 4294967294 is vanishingly unlikely to exist in a real user database.
	const unknown = uint32(4294967294)

	r := NewOS()
	if name, ok := r.UserName(unknown); ok {
		t.Errorf("UserName(%d) unexpectedly resolved to %q", unknown, name)
	}
	if name, ok := r.GroupName(unknown); ok {
		t.Errorf("GroupName(%d) unexpectedly resolved to %q", unknown, name)
	}
}
