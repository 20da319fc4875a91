package model

import "testing"

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   Role
		wantOK bool
	}{
		{
			name:   "admin",
			input:  "admin",
			want:   RoleAdmin,
			wantOK: true,
		},
		{
			name:   "user",
			input:  "user",
			want:   RoleUser,
			wantOK: true,
		},
		{
			name:   "empty defaults to user",
			input:  "",
			want:   RoleUser,
			wantOK: true,
		},
		{
			name:   "unknown role",
			input:  "superuser",
			wantOK: false,
		},
		{
			name:   "case sensitive",
			input:  "Admin",
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseRole(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ParseRole(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestRole_IsAdmin(t *testing.T) {
	if !RoleAdmin.IsAdmin() {
		t.Error("admin role should be admin")
	}
	if RoleUser.IsAdmin() {
		t.Error("user role should not be admin")
	}
	if Role("").IsAdmin() {
		t.Error("empty role should not be admin")
	}
}
