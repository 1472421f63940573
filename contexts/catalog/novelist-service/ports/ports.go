package ports

import "context"

// Novelist names are stored case-folded; uniqueness is enforced on the
// folded value.
type Novelist struct {
	ID   int64
	Name string
}

// ListFilter narrows and pages a novelist listing. Name is matched as a
// substring of the stored (case-folded) name.
type ListFilter struct {
	Name   string
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, novelist Novelist) (Novelist, error)
	GetByID(ctx context.Context, id int64) (Novelist, error)
	List(ctx context.Context, filter ListFilter) ([]Novelist, error)
	Update(ctx context.Context, novelist Novelist) (Novelist, error)
	Delete(ctx context.Context, id int64) error
}
