package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/lgpharma/herbal-shop-backend/internal/storage"
)

var (
	ErrNotFound = errors.New("order not found")
)

// RecordKey is the durable record the order log is stored under.
const RecordKey = "orders"

// Repository is the append-only order log. No update or delete is
// exposed; status advancement belongs to the fulfilment side.
type Repository interface {
	Append(ord Order) error
	List() []Order
	Find(id string) (Order, error)
}

// StoreRepository keeps the full log in memory and rewrites the
// serialized record after every append. The durable write must
// acknowledge before the in-memory log changes, so a failed write
// never leaves a partially appended order.
type StoreRepository struct {
	mu     sync.RWMutex
	store  storage.RecordStore
	orders []Order
}

// NewStoreRepository loads the persisted log. A missing or corrupt
// record degrades to an empty log with a warning; startup never fails
// on bad data.
func NewStoreRepository(store storage.RecordStore) *StoreRepository {
	r := &StoreRepository{store: store}
	data, err := store.Load(RecordKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNoRecord) {
			log.Printf("warning: could not load %s record: %v", RecordKey, err)
		}
		return r
	}
	if err := json.Unmarshal(data, &r.orders); err != nil {
		log.Printf("warning: corrupt %s record, starting empty: %v", RecordKey, err)
		r.orders = nil
	}
	return r
}

func (r *StoreRepository) Append(ord Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Order, len(r.orders), len(r.orders)+1)
	copy(next, r.orders)
	next = append(next, ord)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := r.store.Save(RecordKey, data); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	r.orders = next
	return nil
}

func (r *StoreRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *StoreRepository) Find(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}
