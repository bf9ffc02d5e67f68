package domain

import "testing"

func TestUser_HasPermission(t *testing.T) {
	tests := []struct {
		name        string
		role        string
		permissions []string
		page        string
		want        bool
	}{
		{
			name: "granted page",
			role: RoleUser, permissions: []string{PageDashboard, PageReports},
			page: PageReports, want: true,
		},
		{
			name: "ungranted page",
			role: RoleUser, permissions: []string{PageDashboard},
			page: PageSettings, want: false,
		},
		{
			name: "empty permission list",
			role: RoleUser, permissions: nil,
			page: PageDashboard, want: false,
		},
		{
			name: "admin bypasses permission list",
			role: RoleAdmin, permissions: nil,
			page: PageSettings, want: true,
		},
		{
			name: "unknown page never matches",
			role: RoleUser, permissions: []string{PageDashboard},
			page: "billing", want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Role: tt.role, Permissions: tt.permissions}
			if got := u.HasPermission(tt.page); got != tt.want {
				t.Errorf("HasPermission(%q) = %v, want %v", tt.page, got, tt.want)
			}
		})
	}
}

func TestValidPage(t *testing.T) {
	for _, page := range AllPages {
		if !ValidPage(page) {
			t.Errorf("ValidPage(%q) = false, want true", page)
		}
	}
	if ValidPage("billing") {
		t.Error(`ValidPage("billing") = true, want false`)
	}
	if ValidPage("") {
		t.Error(`ValidPage("") = true, want false`)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	if (&User{Role: RoleUser}).IsAdmin() {
		t.Error("regular user reported as admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin not reported as admin")
	}
}
