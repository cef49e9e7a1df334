package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// demoAccount is one fixed demo credential provisioned by the bootstrap
// endpoint. The set is intentionally hard-coded: one account per role.
type demoAccount struct {
	Email string
	Name  string
	Role  domain.Role
}

const demoPassword = "123456"

var demoAccounts = []demoAccount{
	{Email: "admin@emplacadora.com", Name: "Administrador", Role: domain.RoleAdmin},
	{Email: "vendedor@emplacadora.com", Name: "Vendedor Demo", Role: domain.RoleSeller},
	{Email: "cliente@emplacadora.com", Name: "Cliente Pessoa Física", Role: domain.RolePhysical},
	{Email: "empresa@emplacadora.com", Name: "Cliente Pessoa Jurídica", Role: domain.RoleJuridical},
}

// BootstrapService provisions the fixed demo accounts if they do not exist.
type BootstrapService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewBootstrapService(users ports.UserRepository, log zerolog.Logger) *BootstrapService {
	return &BootstrapService{users: users, log: log}
}

// ProvisionDemoUsers creates each missing demo account and reports a
// per-account result: created, skipped (already present), or error.
// One account failing does not stop the others.
func (s *BootstrapService) ProvisionDemoUsers(ctx context.Context) []ports.BootstrapResult {
	results := make([]ports.BootstrapResult, 0, len(demoAccounts))

	for _, acc := range demoAccounts {
		res := ports.BootstrapResult{Email: acc.Email}

		_, err := s.users.FindByEmail(ctx, acc.Email)
		switch {
		case err == nil:
			res.Status = "skipped"
			res.Reason = "account already exists"
		case errors.Is(err, domain.ErrUserNotFound):
			if createErr := s.createDemoUser(ctx, acc); createErr != nil {
				res.Status = "error"
				res.Reason = createErr.Error()
			} else {
				res.Status = "created"
			}
		default:
			res.Status = "error"
			res.Reason = err.Error()
		}

		s.log.Info().Str("email", acc.Email).Str("status", res.Status).Msg("demo account provisioning")
		results = append(results, res)
	}

	return results
}

func (s *BootstrapService) createDemoUser(ctx context.Context, acc demoAccount) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		Email:        acc.Email,
		Name:         acc.Name,
		PasswordHash: string(hash),
		Role:         acc.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
