package user_services

import (
	"context"
	"testing"

	"github.com/gramcare/sahayak/internal/domain"
	"github.com/gramcare/sahayak/internal/repository/user"
)

type quietLogger struct{}

func (quietLogger) Info(string, ...interface{})  {}
func (quietLogger) Error(string, ...interface{}) {}
func (quietLogger) Debug(string, ...interface{}) {}
func (quietLogger) Warn(string, ...interface{})  {}

type memUserRepo struct {
	users map[string]*domain.User
	next  uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.next++
	u.ID = r.next
	r.users[u.Username] = u
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func TestRegisterLoginTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret", quietLogger{})

	created, err := svc.Register(context.Background(), "asha_sunita", "9999999999", "strongpass1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u, token, err := svc.Login(context.Background(), "asha_sunita", "strongpass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != created.ID || token == "" {
		t.Fatalf("unexpected login result: id=%d token=%q", u.ID, token)
	}

	id, err := svc.ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id != created.ID {
		t.Fatalf("token user id = %d, want %d", id, created.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret", quietLogger{})
	if _, err := svc.Register(context.Background(), "asha_sunita", "", "strongpass1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "asha_sunita", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret", quietLogger{})
	if _, err := svc.Register(context.Background(), "asha_sunita", "", "strongpass1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "asha_sunita", "", "strongpass2"); err == nil {
		t.Fatal("expected duplicate-username rejection")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	a := NewAuthService(newMemUserRepo(), "secret-a", quietLogger{})
	if _, err := a.Register(context.Background(), "u1", "", "strongpass1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, token, err := a.Login(context.Background(), "u1", "strongpass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	b := NewAuthService(newMemUserRepo(), "secret-b", quietLogger{})
	if _, err := b.ValidateJWTToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}
