package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/user/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByTenantAndEmail(ctx context.Context, tenantID snowflake.ID, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("LOWER(email) = LOWER(TRIM(?))", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, id, tenantID snowflake.ID, at time.Time) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ? AND tenant_id = ?`,
		at, at, id, tenantID,
	).Error
}
