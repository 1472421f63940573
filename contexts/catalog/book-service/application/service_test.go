package application_test

import (
	"context"
	"errors"
	"testing"

	"madr/contexts/catalog/book-service/adapters/memory"
	"madr/contexts/catalog/book-service/application"
	domainerrors "madr/contexts/catalog/book-service/domain/errors"
	"madr/contexts/catalog/book-service/ports"
	novelistmemory "madr/contexts/catalog/novelist-service/adapters/memory"
	novelistports "madr/contexts/catalog/novelist-service/ports"
)

// newService seeds one novelist so books have a valid reference target.
func newService(t *testing.T) (application.Service, int64) {
	t.Helper()
	novelists := novelistmemory.NewStore()
	novelist, err := novelists.Create(context.Background(), novelistports.Novelist{Name: "machado de assis"})
	if err != nil {
		t.Fatalf("seed novelist failed: %v", err)
	}
	return application.Service{Repo: memory.NewStore(novelists)}, novelist.ID
}

func TestCreateFoldsTitle(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "  Dom Casmurro ", 1899, novelistID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if book.Title != "dom casmurro" {
		t.Fatalf("expected folded title, got %q", book.Title)
	}
	if book.Year != 1899 || book.NovelistID != novelistID {
		t.Fatalf("unexpected book %+v", book)
	}
}

func TestCreateRejectsUnknownNovelist(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), "dom casmurro", 1899, 999)
	if !errors.Is(err, domainerrors.ErrNovelistIDInvalid) {
		t.Fatalf("expected ErrNovelistIDInvalid, got %v", err)
	}
}

func TestCreateRejectsCaseVariantDuplicateTitle(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "dom casmurro", 1899, novelistID); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "Dom Casmurro", 1900, novelistID); !errors.Is(err, domainerrors.ErrBookExists) {
		t.Fatalf("expected ErrBookExists, got %v", err)
	}
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	svc, novelistID := newService(t)

	if _, err := svc.Create(context.Background(), "  ", 1899, novelistID); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestListFiltersByTitleAndYear(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	seed := []struct {
		title string
		year  int
	}{
		{"dom casmurro", 1899},
		{"memorias postumas de bras cubas", 1881},
		{"quincas borba", 1891},
	}
	for _, b := range seed {
		if _, err := svc.Create(ctx, b.title, b.year, novelistID); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	byTitle, err := svc.List(ctx, ports.ListFilter{Title: "Casmurro", Limit: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].Title != "dom casmurro" {
		t.Fatalf("title filter matched %+v", byTitle)
	}

	// "18" matches 1899 and 1881 as substrings of the decimal year.
	byYear, err := svc.List(ctx, ports.ListFilter{Year: "18", Limit: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byYear) != 2 {
		t.Fatalf("expected 2 year matches, got %d", len(byYear))
	}

	both, err := svc.List(ctx, ports.ListFilter{Title: "bras", Year: "1881", Limit: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(both) != 1 || both[0].Title != "memorias postumas de bras cubas" {
		t.Fatalf("combined filter matched %+v", both)
	}
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "dom casmurro", 1898, novelistID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	year := 1899
	updated, err := svc.Update(ctx, book.ID, ports.BookUpdate{Year: &year})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Year != 1899 {
		t.Fatalf("year not applied: %+v", updated)
	}
	if updated.Title != "dom casmurro" || updated.NovelistID != novelistID {
		t.Fatalf("absent fields were touched: %+v", updated)
	}

	title := "  Dom Casmurro (rev) "
	updated, err = svc.Update(ctx, book.ID, ports.BookUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "dom casmurro (rev)" {
		t.Fatalf("expected folded title, got %q", updated.Title)
	}
	if updated.Year != 1899 {
		t.Fatalf("year lost on title update: %+v", updated)
	}
}

func TestUpdateRejectsBlankTitleAndUnknownNovelist(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "dom casmurro", 1899, novelistID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	blank := "   "
	if _, err := svc.Update(ctx, book.ID, ports.BookUpdate{Title: &blank}); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank title, got %v", err)
	}

	ghost := int64(999)
	if _, err := svc.Update(ctx, book.ID, ports.BookUpdate{NovelistID: &ghost}); !errors.Is(err, domainerrors.ErrNovelistIDInvalid) {
		t.Fatalf("expected ErrNovelistIDInvalid, got %v", err)
	}

	if _, err := svc.Update(ctx, 999, ports.BookUpdate{}); !errors.Is(err, domainerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestUpdateRejectsDuplicateTitle(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "dom casmurro", 1899, novelistID); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other, err := svc.Create(ctx, "quincas borba", 1891, novelistID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	taken := "Dom Casmurro"
	if _, err := svc.Update(ctx, other.ID, ports.BookUpdate{Title: &taken}); !errors.Is(err, domainerrors.ErrBookExists) {
		t.Fatalf("expected ErrBookExists, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, novelistID := newService(t)
	ctx := context.Background()

	book, err := svc.Create(ctx, "dom casmurro", 1899, novelistID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, book.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, book.ID); !errors.Is(err, domainerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, book.ID); !errors.Is(err, domainerrors.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound for repeat delete, got %v", err)
	}
}
