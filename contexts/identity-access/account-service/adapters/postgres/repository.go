package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "madr/contexts/identity-access/account-service/domain/errors"
	"madr/contexts/identity-access/account-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toUser() ports.User {
	return ports.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

func (r *Repository) Create(ctx context.Context, user ports.User) (ports.User, error) {
	row := userModel{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.User{}, domainerrors.ErrUserExists
		}
		return ports.User{}, err
	}
	return row.toUser(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, domainerrors.ErrUserNotFound
		}
		return ports.User{}, err
	}
	return row.toUser(), nil
}

func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, domainerrors.ErrUserNotFound
		}
		return ports.User{}, err
	}
	return row.toUser(), nil
}

func (r *Repository) ExistsUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Update(ctx context.Context, user ports.User) (ports.User, error) {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      user.Username,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ports.User{}, domainerrors.ErrUserUpdateConflict
		}
		return ports.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&userModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
