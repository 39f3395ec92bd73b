package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

// CreateUser stores a user with any role. Used by admins; self-service signup goes through Register.
func (s *AuthService) CreateUser(ctx context.Context, in dto.UserInput) (dto.User, error) {
	user := &models.User{CreatedAt: s.now().UTC()}
	if err := applyUserInput(user, in); err != nil {
		return dto.User{}, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return dto.User{}, err
	}
	user.Password = hash

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewUserRepository(tx)
		exists, err := repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if exists {
			return emailTaken(user.Email)
		}
		if err := repo.Create(ctx, user); err != nil {
			if isUniqueViolation(err) {
				return emailTaken(user.Email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.User{}, err
	}
	return dto.ToUser(user), nil
}

// UpdateUser overwrites the profile fields and role. The password is left unchanged.
func (s *AuthService) UpdateUser(ctx context.Context, id int64, in dto.UserInput) (dto.User, error) {
	var user *models.User
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewUserRepository(tx)
		var err error
		user, err = repo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "user", id)
		}
		if err := applyUserInput(user, in); err != nil {
			return err
		}

		other, err := repo.FindByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err == nil && other.UserID != id {
			return emailTaken(user.Email)
		}

		if err := repo.Update(ctx, user); err != nil {
			if isUniqueViolation(err) {
				return emailTaken(user.Email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return dto.User{}, err
	}
	return dto.ToUser(user), nil
}

// DeleteUser removes the user and unlinks any trainer profile. Deleting an unknown id succeeds.
func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewUserRepository(tx)
		if err := repo.DetachTrainers(ctx, id); err != nil {
			return err
		}
		return repo.DeleteByID(ctx, id)
	})
}

// ChangePassword replaces the user's password hash.
func (s *AuthService) ChangePassword(ctx context.Context, id int64, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewUserRepository(tx)
		user, err := repo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "user", id)
		}
		user.Password = hash
		return repo.Update(ctx, user)
	})
}

func applyUserInput(u *models.User, in dto.UserInput) error {
	email := normalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return invalidf("a valid email is required")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return invalidf("firstName is required")
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = models.RoleMember
	}
	if !models.IsValidRole(role) {
		return invalidf("role must be one of %s, %s, %s", models.RoleAdmin, models.RoleStaff, models.RoleMember)
	}

	u.FirstName = strings.TrimSpace(in.FirstName)
	u.LastName = strings.TrimSpace(in.LastName)
	u.Email = email
	u.Phone = optional(in.Phone)
	u.Address = optional(in.Address)
	u.Role = role
	return nil
}

func emailTaken(email string) error {
	return fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
}
