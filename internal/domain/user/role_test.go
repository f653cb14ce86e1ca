package user

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	if role, ok := ParseRole(" Admin "); !ok || role != RoleAdmin {
		t.Fatalf("ParseRole(Admin) = %v, %v", role, ok)
	}
	if _, ok := ParseRole("owner"); ok {
		t.Fatal("expected unknown role to fail")
	}
}

func TestRolePolicy(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleAdmin, RoleEditor, RoleViewer} {
		if !CanWrite(r) {
			t.Fatalf("expected %s to be allowed to write", r)
		}
	}
	if CanWrite("") {
		t.Fatal("expected empty role to be denied writes")
	}

	if !CanDelete(RoleAdmin) {
		t.Fatal("expected admin to be allowed to delete")
	}
	for _, r := range []Role{RoleEditor, RoleViewer, ""} {
		if CanDelete(r) {
			t.Fatalf("expected %s to be denied deletes", r)
		}
	}
}
