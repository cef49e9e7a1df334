package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
)

func TestBootstrapService_ProvisionDemoUsers_CreatesAll(t *testing.T) {
	users := newStubUserRepo()
	svc := NewBootstrapService(users, zerolog.Nop())

	results := svc.ProvisionDemoUsers(context.Background())
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Status != "created" {
			t.Fatalf("%s: expected created, got %s (%s)", res.Email, res.Status, res.Reason)
		}
	}

	admin, err := users.FindByEmail(context.Background(), "admin@emplacadora.com")
	if err != nil {
		t.Fatalf("admin account missing after provisioning: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("demo password does not verify: %v", err)
	}
}

func TestBootstrapService_ProvisionDemoUsers_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	svc := NewBootstrapService(users, zerolog.Nop())

	_ = svc.ProvisionDemoUsers(context.Background())
	results := svc.ProvisionDemoUsers(context.Background())

	for _, res := range results {
		if res.Status != "skipped" {
			t.Fatalf("%s: expected skipped on second run, got %s", res.Email, res.Status)
		}
	}
	if len(users.users) != 4 {
		t.Fatalf("expected 4 accounts, got %d", len(users.users))
	}
}

func TestBootstrapService_ProvisionDemoUsers_OneRolePerAccount(t *testing.T) {
	users := newStubUserRepo()
	svc := NewBootstrapService(users, zerolog.Nop())
	_ = svc.ProvisionDemoUsers(context.Background())

	seen := make(map[domain.Role]int)
	for _, u := range users.users {
		seen[u.Role]++
	}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSeller, domain.RolePhysical, domain.RoleJuridical} {
		if seen[role] != 1 {
			t.Fatalf("expected exactly one %s account, got %d", role, seen[role])
		}
	}
}
