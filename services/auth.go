package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

const minPasswordLen = 6

// Claims extends jwt.RegisteredClaims with the user's identity. Subject is the email.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles login, registration and user lookups.
type AuthService struct {
	db  *bun.DB
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewAuthService(db *bun.DB, key []byte, ttl time.Duration) *AuthService {
	return &AuthService{db: db, key: key, ttl: ttl, now: time.Now}
}

// HashPassword validates password and returns a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", invalidf("password must be at least %d characters", minPasswordLen)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Login checks the credentials and returns a signed token with the user.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return dto.LoginResponse{}, invalidf("email and password are required")
	}

	user, err := repository.NewUserRepository(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dto.LoginResponse{}, fmt.Errorf("%w: incorrect email or password", ErrUnauthorized)
		}
		return dto.LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("%w: incorrect email or password", ErrUnauthorized)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{Token: token, User: dto.ToUser(user)}, nil
}

// IssueToken signs an HS256 token for user valid for the configured TTL.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// ParseToken validates raw against key and returns its claims.
func ParseToken(raw string, key []byte) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !tkn.Valid || claims.Email == "" {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}
	return claims, nil
}

// Register creates a member account. The email must not be registered yet.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	email := normalizeEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return invalidf("a valid email is required")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return invalidf("firstName is required")
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewUserRepository(tx)
		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
		}

		user := &models.User{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     email,
			Password:  hash,
			Phone:     optional(req.Phone),
			Address:   optional(req.Address),
			Role:      models.RoleMember,
			CreatedAt: s.now().UTC(),
		}
		if err := repo.Create(ctx, user); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
			}
			return err
		}
		return nil
	})
}

// UserByEmail returns the registered user for email.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (dto.User, error) {
	user, err := repository.NewUserRepository(s.db).FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return dto.User{}, notFound(err, "user", email)
	}
	return dto.ToUser(user), nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]dto.User, error) {
	users, err := repository.NewUserRepository(s.db).FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Map(users, dto.ToUser), nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (dto.User, error) {
	user, err := repository.NewUserRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return dto.User{}, notFound(err, "user", id)
	}
	return dto.ToUser(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
