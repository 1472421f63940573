package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "madr/contexts/catalog/novelist-service/domain/errors"
	"madr/contexts/catalog/novelist-service/ports"
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

type novelistModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (novelistModel) TableName() string { return "novelists" }

func (m novelistModel) toNovelist() ports.Novelist {
	return ports.Novelist{ID: m.ID, Name: m.Name}
}

func (r *Repository) Create(ctx context.Context, novelist ports.Novelist) (ports.Novelist, error) {
	row := novelistModel{Name: novelist.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.Novelist{}, domainerrors.ErrNovelistExists
		}
		return ports.Novelist{}, err
	}
	return row.toNovelist(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (ports.Novelist, error) {
	var row novelistModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Novelist{}, domainerrors.ErrNovelistNotFound
		}
		return ports.Novelist{}, err
	}
	return row.toNovelist(), nil
}

func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]ports.Novelist, error) {
	tx := r.db.WithContext(ctx).Model(&novelistModel{})
	if filter.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var rows []novelistModel
	err := tx.Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.Novelist, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toNovelist())
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, novelist ports.Novelist) (ports.Novelist, error) {
	result := r.db.WithContext(ctx).
		Model(&novelistModel{}).
		Where("id = ?", novelist.ID).
		Updates(map[string]any{
			"name":       novelist.Name,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ports.Novelist{}, domainerrors.ErrNovelistExists
		}
		return ports.Novelist{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.Novelist{}, domainerrors.ErrNovelistNotFound
	}
	return novelist, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&novelistModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNovelistNotFound
	}
	return nil
}

// NovelistExists is unused against postgres (the foreign key enforces
// the referential invariant) but keeps the adapter interchangeable with
// the memory store.
func (r *Repository) NovelistExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&novelistModel{}).
		Where("id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
