package identity

import (
	"context"
	"errors"

	"github.com/hospitalportal/hospitalportal/internal/platform/auth"
	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

// ErrEmailTaken is returned when a registration reuses an existing email.
var ErrEmailTaken = errors.New("User already exists with this email.")

// ErrInvalidCredentials covers both unknown email and wrong password so
// the response does not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("Invalid email or password.")

type Service struct {
	users      Repository
	tokens     *auth.TokenIssuer
	bcryptCost int
}

func NewService(users Repository, tokens *auth.TokenIssuer, bcryptCost int) *Service {
	return &Service{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

func roleAllowed(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Register creates an account and returns a signed token for it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, *User, error) {
	if in.Email == "" || in.Password == "" || !roleAllowed(in.Role) {
		return "", nil, httpx.BadRequestf("Please provide valid email, password, and a staff role.")
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return "", nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", nil, err
	}
	u := &User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		FullName:     in.FullName,
	}
	if u.FullName == "" {
		u.FullName = DefaultFullName
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// CurrentUser resolves the account behind a verified token.
func (s *Service) CurrentUser(ctx context.Context, id int64) (*User, error) {
	return s.users.GetByID(ctx, id)
}
