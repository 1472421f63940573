package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "madr/contexts/catalog/book-service/domain/errors"
	"madr/contexts/catalog/book-service/ports"
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

type bookModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title      string    `gorm:"column:title"`
	Year       int       `gorm:"column:year"`
	NovelistID int64     `gorm:"column:novelist_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (bookModel) TableName() string { return "books" }

func (m bookModel) toBook() ports.Book {
	return ports.Book{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		NovelistID: m.NovelistID,
	}
}

func (r *Repository) Create(ctx context.Context, book ports.Book) (ports.Book, error) {
	row := bookModel{
		Title:      book.Title,
		Year:       book.Year,
		NovelistID: book.NovelistID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.Book{}, domainerrors.ErrBookExists
		}
		if isForeignKeyViolation(err) {
			return ports.Book{}, domainerrors.ErrNovelistIDInvalid
		}
		return ports.Book{}, err
	}
	return row.toBook(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (ports.Book, error) {
	var row bookModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Book{}, domainerrors.ErrBookNotFound
		}
		return ports.Book{}, err
	}
	return row.toBook(), nil
}

func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]ports.Book, error) {
	tx := r.db.WithContext(ctx).Model(&bookModel{})
	if filter.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Year != "" {
		tx = tx.Where("CAST(year AS TEXT) LIKE ?", "%"+filter.Year+"%")
	}

	var rows []bookModel
	err := tx.Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]ports.Book, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toBook())
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, book ports.Book) (ports.Book, error) {
	result := r.db.WithContext(ctx).
		Model(&bookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":       book.Title,
			"year":        book.Year,
			"novelist_id": book.NovelistID,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ports.Book{}, domainerrors.ErrBookExists
		}
		if isForeignKeyViolation(result.Error) {
			return ports.Book{}, domainerrors.ErrNovelistIDInvalid
		}
		return ports.Book{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.Book{}, domainerrors.ErrBookNotFound
	}
	return book, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&bookModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
