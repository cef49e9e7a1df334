package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by id
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) { r.users[u.ID] = u }

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = u.Email
	}
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

type stubSessionStore struct {
	sessions  map[string]*domain.Session
	createErr error
	getErr    error
	deleteErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, sess *domain.Session) error {
	if s.createErr != nil {
		return s.createErr
	}
	clone := *sess
	s.sessions[sess.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if sess, ok := s.sessions[id]; ok {
		clone := *sess
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, id)
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func adminUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           "u1",
		Email:        "admin@emplacadora.com",
		Name:         "Administrador",
		PasswordHash: mustHash(t, "123456"),
		Role:         domain.RoleAdmin,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(store.sessions))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != "admin" {
		t.Fatalf("expected role admin, got %v", claims["role"])
	}
	if claims["sub"] != "u1" {
		t.Fatalf("expected sub u1, got %v", claims["sub"])
	}
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	svc := NewSessionService(users, newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "admin@emplacadora.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	svc := NewSessionService(newStubUserRepo(), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ghost@emplacadora.com", "123456"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	svc := NewSessionService(newStubUserRepo(), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// A correct password is not enough: a profile whose stored role is outside
// the enum must fail the login.
func TestSessionService_Login_UnknownRoleFailsClosed(t *testing.T) {
	users := newStubUserRepo()
	u := adminUser(t)
	u.Role = "superuser"
	users.add(u)
	svc := NewSessionService(users, newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "admin@emplacadora.com", "123456"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestSessionService_Resolve_Success(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	state := svc.Resolve(context.Background(), token)
	if !state.Authenticated {
		t.Fatalf("expected authenticated state")
	}
	if state.User == nil || state.User.ID != "u1" {
		t.Fatalf("unexpected user: %+v", state.User)
	}
}

func TestSessionService_Resolve_GarbageToken(t *testing.T) {
	svc := NewSessionService(newStubUserRepo(), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	state := svc.Resolve(context.Background(), "not-a-token")
	if state.Authenticated || state.User != nil {
		t.Fatalf("expected unauthenticated state, got %+v", state)
	}
}

func TestSessionService_Resolve_RevokedSession(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	svc.Logout(context.Background(), token)

	if state := svc.Resolve(context.Background(), token); state.Authenticated {
		t.Fatalf("revoked session must not resolve as authenticated")
	}
}

// A live session whose profile row vanished is NOT authenticated.
func TestSessionService_Resolve_ProfileMissingFailsClosed(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	delete(users.users, "u1")

	if state := svc.Resolve(context.Background(), token); state.Authenticated {
		t.Fatalf("session without matching profile must not be authenticated")
	}
}

// A storage failure during profile lookup is indistinguishable from absence
// for the caller: unauthenticated, no error.
func TestSessionService_Resolve_LookupErrorFailsClosed(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	users.findErr = errors.New("connection reset")

	if state := svc.Resolve(context.Background(), token); state.Authenticated {
		t.Fatalf("lookup error must resolve as unauthenticated")
	}
}

func TestSessionService_Resolve_RoleChangedToUnknown(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	users.users["u1"].Role = "root"

	if state := svc.Resolve(context.Background(), token); state.Authenticated {
		t.Fatalf("unknown role must resolve as unauthenticated")
	}
}

func TestSessionService_Logout_RemovesSession(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	svc.Logout(context.Background(), token)

	if len(store.sessions) != 0 {
		t.Fatalf("expected session removed, %d left", len(store.sessions))
	}
}

// Logout never surfaces a store failure: local state clearing must not be
// blocked by a remote error.
func TestSessionService_Logout_StoreFailureSwallowed(t *testing.T) {
	users := newStubUserRepo()
	users.add(adminUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "secret", time.Hour, zerolog.Nop())

	token, _, _ := svc.Login(context.Background(), "admin@emplacadora.com", "123456")
	store.deleteErr = errors.New("redis down")

	svc.Logout(context.Background(), token) // must not panic or error
}
