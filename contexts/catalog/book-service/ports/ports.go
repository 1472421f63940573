package ports

import "context"

// Book titles are stored case-folded; uniqueness is enforced on the
// folded value. NovelistID must reference an existing novelist.
type Book struct {
	ID         int64
	Title      string
	Year       int
	NovelistID int64
}

// BookUpdate is a partial update: nil fields are left unchanged,
// non-nil fields are applied even when they carry a zero value.
type BookUpdate struct {
	Title      *string
	Year       *int
	NovelistID *int64
}

// ListFilter narrows and pages a book listing. Title is matched as a
// substring of the stored (case-folded) title; Year as a substring of
// the year's decimal text.
type ListFilter struct {
	Title  string
	Year   string
	Offset int
	Limit  int
}

// Repository implementations map uniqueness violations to ErrBookExists
// and referential violations to ErrNovelistIDInvalid; the store's own
// constraints are the final authority under concurrent writes.
type Repository interface {
	Create(ctx context.Context, book Book) (Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	List(ctx context.Context, filter ListFilter) ([]Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	Delete(ctx context.Context, id int64) error
}

// NovelistDirectory answers referential checks for stores that have no
// native foreign-key enforcement.
type NovelistDirectory interface {
	NovelistExists(ctx context.Context, id int64) (bool, error)
}
