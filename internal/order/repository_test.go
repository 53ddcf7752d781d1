package order

import (
	"errors"
	"testing"

	"github.com/lgpharma/herbal-shop-backend/internal/storage"
)

// failingStore rejects every save, for exercising the atomic-append
// guarantee.
type failingStore struct{}

func (failingStore) Load(key string) ([]byte, error) { return nil, storage.ErrNoRecord }

func (failingStore) Save(key string, data []byte) error { return errors.New("disk full") }

func TestStoreRepository_AppendPersistsAndReloads(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewStoreRepository(store)

	ord := Order{ID: "lg-1", Status: StatusPlaced, Total: 348, PaymentMethod: PaymentCOD}
	if err := repo.Append(ord); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	// a fresh repository over the same store sees the order
	reloaded := NewStoreRepository(store)
	got := reloaded.List()
	if len(got) != 1 || got[0].ID != "lg-1" {
		t.Fatalf("expected reloaded log with order lg-1, got %+v", got)
	}

	found, err := reloaded.Find("lg-1")
	if err != nil || found.Total != 348 {
		t.Fatalf("find failed: %v %+v", err, found)
	}
	if _, err := reloaded.Find("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestStoreRepository_CorruptRecordDegradesToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Save(RecordKey, []byte(`{not json`)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := NewStoreRepository(store)
	if got := repo.List(); len(got) != 0 {
		t.Fatalf("expected empty log after corrupt load, got %d orders", len(got))
	}

	// the repository stays usable
	if err := repo.Append(Order{ID: "lg-2", Status: StatusPlaced}); err != nil {
		t.Fatalf("append after corrupt load failed: %v", err)
	}
}

func TestStoreRepository_FailedSaveLeavesNoPartialOrder(t *testing.T) {
	repo := NewStoreRepository(failingStore{})

	err := repo.Append(Order{ID: "lg-3", Status: StatusPlaced})
	if err == nil {
		t.Fatalf("expected append to fail")
	}
	if got := repo.List(); len(got) != 0 {
		t.Fatalf("expected no partially appended order, got %d", len(got))
	}
}

func TestStoreRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewStoreRepository(storage.NewMemoryStore())
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(Order{ID: id, Status: StatusPlaced}); err != nil {
			t.Fatalf("append %s failed: %v", id, err)
		}
	}
	got := repo.List()
	if len(got) != 3 || got[0].ID != "a" || got[2].ID != "c" {
		t.Fatalf("expected insertion order a,b,c, got %+v", got)
	}
}
