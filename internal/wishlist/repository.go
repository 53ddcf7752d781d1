package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
	"github.com/lgpharma/herbal-shop-backend/internal/storage"
)

// RecordKey is the durable record the wishlist is stored under.
const RecordKey = "wishlist"

// Repository holds the saved-product set. Toggling an absent product
// adds it; toggling a present one removes it.
type Repository interface {
	List() []catalog.Product
	Toggle(p catalog.Product) (added bool, err error)
	Contains(id string) bool
}

// StoreRepository persists the wishlist as a JSON array and rewrites
// the record after every toggle.
type StoreRepository struct {
	mu       sync.RWMutex
	store    storage.RecordStore
	products []catalog.Product
}

// NewStoreRepository loads the persisted wishlist; missing or corrupt
// data degrades to an empty set.
func NewStoreRepository(store storage.RecordStore) *StoreRepository {
	r := &StoreRepository{store: store}
	data, err := store.Load(RecordKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoRecord) {
			log.Printf("warning: could not load %s record: %v", RecordKey, err)
		}
		return r
	}
	if err := json.Unmarshal(data, &r.products); err != nil {
		log.Printf("warning: corrupt %s record, starting empty: %v", RecordKey, err)
		r.products = nil
	}
	return r
}

func (r *StoreRepository) List() []catalog.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *StoreRepository) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (r *StoreRepository) Toggle(p catalog.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]catalog.Product, 0, len(r.products)+1)
	added := true
	for _, existing := range r.products {
		if existing.ID == p.ID {
			added = false
			continue
		}
		next = append(next, existing)
	}
	if added {
		next = append(next, p)
	}

	data, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("marshal wishlist: %w", err)
	}
	if err := r.store.Save(RecordKey, data); err != nil {
		return false, fmt.Errorf("persist wishlist: %w", err)
	}
	r.products = next
	return added, nil
}
