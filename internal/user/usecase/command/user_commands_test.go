package command

import (
	"sort"
	"strings"
	"testing"

	"github.com/tair/laminate-stock/internal/user/domain"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	all := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func TestRegisterUserHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		cmd     RegisterUserCommand
		wantErr string
	}{
		{
			name: "valid registration",
			cmd:  RegisterUserCommand{Username: "asel", Email: "asel@example.com", Password: "s3cret-pass"},
		},
		{
			name: "with permissions",
			cmd: RegisterUserCommand{
				Username: "bakyt", Email: "bakyt@example.com", Password: "s3cret-pass",
				Permissions: []string{domain.PageDashboard, domain.PageInventory},
			},
		},
		{
			name:    "missing username",
			cmd:     RegisterUserCommand{Email: "a@example.com", Password: "s3cret-pass"},
			wantErr: "username is required",
		},
		{
			name:    "short password",
			cmd:     RegisterUserCommand{Username: "asel", Email: "a@example.com", Password: "abc"},
			wantErr: "at least 6 characters",
		},
		{
			name:    "invalid role",
			cmd:     RegisterUserCommand{Username: "asel", Email: "a@example.com", Password: "s3cret-pass", Role: "root"},
			wantErr: "invalid role",
		},
		{
			name: "unknown permission key",
			cmd: RegisterUserCommand{
				Username: "asel", Email: "a@example.com", Password: "s3cret-pass",
				Permissions: []string{"billing"},
			},
			wantErr: "unknown page permission",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			handler := NewRegisterUserHandler(repo)

			user, err := handler.Handle(tt.cmd)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Handle() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if user.Role != domain.RoleUser {
				t.Errorf("role = %q, want default %q", user.Role, domain.RoleUser)
			}
			if !user.IsActive {
				t.Error("new user is not active")
			}
			if user.Password == tt.cmd.Password {
				t.Error("password stored in plaintext")
			}
		})
	}
}

func TestRegisterUserHandler_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	if _, err := handler.Handle(RegisterUserCommand{Username: "asel", Email: "asel@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("first registration error = %v", err)
	}
	if _, err := handler.Handle(RegisterUserCommand{Username: "asel", Email: "other@example.com", Password: "s3cret-pass"}); err == nil {
		t.Error("duplicate username accepted")
	}
	if _, err := handler.Handle(RegisterUserCommand{Username: "other", Email: "asel@example.com", Password: "s3cret-pass"}); err == nil {
		t.Error("duplicate email accepted")
	}
}

func TestLoginUserHandler_Handle(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	registered, err := register.Handle(RegisterUserCommand{Username: "asel", Email: "asel@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("register error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := login.Handle(LoginUserCommand{Username: "asel", Password: "s3cret-pass"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if resp.Token == "" {
			t.Error("login returned an empty token")
		}
		if resp.User.ID != registered.ID {
			t.Errorf("user id = %d, want %d", resp.User.ID, registered.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := login.Handle(LoginUserCommand{Username: "asel", Password: "wrong"}); err == nil {
			t.Error("wrong password accepted")
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		if _, err := login.Handle(LoginUserCommand{Username: "ghost", Password: "s3cret-pass"}); err == nil {
			t.Error("unknown username accepted")
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		u := repo.users[registered.ID]
		u.IsActive = false
		defer func() { u.IsActive = true }()

		if _, err := login.Handle(LoginUserCommand{Username: "asel", Password: "s3cret-pass"}); err == nil {
			t.Error("deactivated account accepted")
		}
	})
}

func TestUpdatePermissionsHandler_Handle(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	update := NewUpdatePermissionsHandler(repo)

	registered, err := register.Handle(RegisterUserCommand{Username: "asel", Email: "asel@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("register error = %v", err)
	}

	t.Run("replaces the permission list", func(t *testing.T) {
		user, err := update.Handle(UpdatePermissionsCommand{
			UserID:      registered.ID,
			Permissions: []string{domain.PageReports, domain.PageTransactions},
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if !user.HasPermission(domain.PageReports) {
			t.Error("granted page not reported")
		}
		if user.HasPermission(domain.PageDashboard) {
			t.Error("previous page survived the replacement")
		}
	})

	t.Run("unknown page rejected", func(t *testing.T) {
		_, err := update.Handle(UpdatePermissionsCommand{
			UserID:      registered.ID,
			Permissions: []string{"billing"},
		})
		if err == nil {
			t.Fatal("Handle() expected error, got nil")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := update.Handle(UpdatePermissionsCommand{UserID: 42, Permissions: nil})
		if err == nil {
			t.Fatal("Handle() expected error, got nil")
		}
	})
}
