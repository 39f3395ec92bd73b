package repository

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// UserRepository adds email lookups to generic User access.
type UserRepository struct {
	*Repository[models.User]
	db bun.IDB
}

// NewUserRepository returns a UserRepository over db.
func NewUserRepository(db bun.IDB) *UserRepository {
	return &UserRepository{Repository: New[models.User](db), db: db}
}

// FindByEmail returns the user with the given email or sql.ErrNoRows.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.NewSelect().Model(user).Where("LOWER(u.email) = LOWER(?)", email).Scan(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// ExistsByEmail reports whether the email is already registered.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.NewSelect().Model((*models.User)(nil)).Where("LOWER(u.email) = LOWER(?)", email).Exists(ctx)
}

// DetachTrainers clears user_id on every trainer linked to the user.
func (r *UserRepository) DetachTrainers(ctx context.Context, userID int64) error {
	_, err := r.db.NewUpdate().Model((*models.Trainer)(nil)).
		Set("user_id = NULL").
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}
