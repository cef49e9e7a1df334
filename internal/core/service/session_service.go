package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/emplacadora/emplacadora-api/internal/core/domain"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// SessionService implements login, session restore, and logout.
type SessionService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewSessionService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *SessionService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &SessionService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login verifies credentials, validates the stored role, creates a session,
// and mints the access token. A profile whose role fails the enum parse is
// treated as an invalid profile: the login fails even with a correct password.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		s.log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("profile has unknown role, rejecting login")
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(sess, user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// Resolve restores authentication state from a bearer token. Every failure
// path collapses to an unauthenticated snapshot: a valid session whose
// profile is missing, unreadable, or carries an unknown role is NOT
// authenticated.
func (s *SessionService) Resolve(ctx context.Context, token string) domain.AuthState {
	sid, err := s.parseToken(token)
	if err != nil {
		return domain.AuthState{}
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if err != domain.ErrSessionNotFound {
			s.log.Warn().Err(err).Msg("session lookup failed, treating as unauthenticated")
		}
		return domain.AuthState{}
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if err != domain.ErrUserNotFound {
			s.log.Warn().Err(err).Str("user_id", sess.UserID).Msg("profile lookup failed, treating as unauthenticated")
		}
		return domain.AuthState{}
	}

	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		s.log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("profile has unknown role, treating as unauthenticated")
		return domain.AuthState{}
	}

	return domain.AuthState{Authenticated: true, User: user}
}

// Logout revokes the token's session. The caller always observes success;
// a failing store call is logged and swallowed so local state clearing is
// never blocked by a remote failure.
func (s *SessionService) Logout(ctx context.Context, token string) {
	sid, err := s.parseToken(token)
	if err != nil {
		return
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Msg("session revocation failed, local logout proceeds")
	}
}

func (s *SessionService) signToken(sess *domain.Session, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sess.ID,
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  sess.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseToken validates the token signature and returns the session id claim.
func (s *SessionService) parseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
