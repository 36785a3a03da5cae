package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// AuthService implements login, signup, session teardown and profile edits.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login authenticates the exact (email, role) pair. Unknown email, wrong role
// and wrong password all collapse into ErrInvalidCredentials so the response
// never reveals which part failed. An existing session is left untouched on
// failure.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	if email == "" || password == "" || !role.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return token, user.Redacted(), nil
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" || !input.Role.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Duplicate check covers every persisted account, demo roster included.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           newID("user"),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		CreatedAt:    time.Now().UTC(),
	}
	if input.Role == domain.RoleLawyer {
		user.Specialty = input.Specialty
		user.Experience = input.Experience
		user.Fees = input.Fees
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("signup")
	return token, user.Redacted(), nil
}

// Logout tears down the session. Deleting an absent session succeeds, so the
// call is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.User.Redacted(), nil
}

// IsAuthenticated is true iff the token verifies and its session still
// exists; logout revokes the token even before it expires.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" || !s.tokenValid(token) {
		return false
	}
	_, err := s.sessions.Find(ctx, token)
	return err == nil
}

// UpdateProfile shallow-merges the patch over the caller's account and
// refreshes the session snapshot so CurrentUser reflects the edit.
func (s *AuthService) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, session.User.ID, func(u *domain.User) {
		applyProfilePatch(u, patch)
	})
	if err != nil {
		return nil, err
	}

	session.User = *updated
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return updated.Redacted(), nil
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.signToken(user)
	if err != nil {
		return "", err
	}
	err = s.sessions.Save(ctx, &domain.Session{
		Token:     token,
		User:      *user,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) tokenValid(token string) bool {
	tkn, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	return err == nil && tkn.Valid
}

func applyProfilePatch(u *domain.User, p ports.ProfilePatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Photo != nil {
		u.Photo = *p.Photo
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Specialty != nil {
		u.Specialty = *p.Specialty
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	if p.Fees != nil {
		u.Fees = *p.Fees
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
}
