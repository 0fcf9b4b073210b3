package store

import (
	"context"
	"log"
	"sync"

	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

// Slot is a single named durable slot holding the serialized registry
// document. Read returns (nil, nil) when the slot has never been written.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Store owns the in-memory registry and mirrors every mutation to the slot.
// The browser original was single-threaded; here one mutex keeps the
// mutate-then-persist sequence a single-actor write under a concurrent
// listener. Persistence failures are logged and absorbed, never surfaced:
// losing durability must not interrupt an in-progress order.
type Store struct {
	mu   sync.Mutex
	slot Slot
	reg  quote.Registry
}

func New(slot Slot) *Store {
	return &Store{slot: slot, reg: quote.Registry{}}
}

// Load reads the slot into the registry. Missing data or a parse failure
// leaves the registry at its prior state (empty at cold start).
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.slot.Read(ctx)
	if err != nil {
		log.Printf("registry store: load: %v", err)
		return
	}
	if data == nil {
		return
	}
	reg, err := quote.DecodeDocument(data)
	if err != nil {
		log.Printf("registry store: load: %v", err)
		return
	}
	s.reg = reg
	log.Printf("registry store: loaded %d customers", len(reg))
}

// persist writes the current registry. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	data, err := quote.EncodeDocument(s.reg)
	if err != nil {
		log.Printf("registry store: encode: %v", err)
		return
	}
	if err := s.slot.Write(ctx, data); err != nil {
		log.Printf("registry store: save: %v", err)
	}
}

// SubmitOrder commits an order submission: the submitted lines become the
// customer's entire master quote, replacing whatever was stored before.
// Previously quoted items that were not re-selected are dropped.
func (s *Store) SubmitOrder(ctx context.Context, rawName string, lines []quote.Line) (*quote.Record, error) {
	if err := validateSubmit(rawName, lines); err != nil {
		return nil, err
	}
	key := quote.NormalizeKey(rawName)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &quote.Record{DisplayName: rawName, Items: quote.BuildItems(lines)}
	s.reg.Upsert(key, rec)
	s.persist(ctx)
	return rec.Clone(), nil
}

// SaveMasterEdit replaces a customer's stored items with the curated rows.
func (s *Store) SaveMasterEdit(ctx context.Context, key string, rows []quote.EditRow) (*quote.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.reg.Lookup(key)
	if !ok {
		return nil, false
	}
	rec.Items = quote.ApplyMasterEdit(rec, rows)
	s.persist(ctx)
	return rec.Clone(), true
}

// Delete removes a customer and persists. Reports whether the key existed.
func (s *Store) Delete(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.reg.Remove(key) {
		return false
	}
	s.persist(ctx)
	return true
}

// Import replaces the whole registry from an uploaded document. No merge:
// the document's customers become the registry. Malformed input leaves the
// registry untouched and is reported to the caller.
func (s *Store) Import(ctx context.Context, data []byte) (int, error) {
	reg, err := quote.DecodeDocument(data)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg = reg
	s.persist(ctx)
	return len(reg), nil
}

// Export serializes the registry as the versioned download document.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return quote.EncodeDocument(s.reg)
}

// Lookup returns a copy of the customer's record, safe to use outside the
// store's lock.
func (s *Store) Lookup(key string) (*quote.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.reg.Lookup(key)
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

func (s *Store) Search(query string) []quote.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Search(query)
}

func (s *Store) Summaries() []quote.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Summaries()
}

func validateSubmit(rawName string, lines []quote.Line) error {
	if quote.NormalizeKey(rawName) == "" {
		return quote.ErrEnterCustomerName
	}
	if len(lines) == 0 {
		return quote.ErrSelectItems
	}
	return nil
}
