package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// RegistrySlot stores the serialized customer registry as a single named row,
// the server-side equivalent of the browser app's one localStorage key.
type RegistrySlot struct {
	db   *DB
	name string
}

func NewRegistrySlot(db *DB, name string) *RegistrySlot {
	return &RegistrySlot{db: db, name: name}
}

// EnsureSchema creates the slot table when it does not exist yet.
func (s *RegistrySlot) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS registry_slots (
			name       text PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Read returns the slot's document, or (nil, nil) when it was never written.
func (s *RegistrySlot) Read(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := s.db.Pool.QueryRow(ctx,
		`SELECT doc FROM registry_slots WHERE name = $1`, s.name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *RegistrySlot) Write(ctx context.Context, data []byte) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO registry_slots (name, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, s.name, data)
	return err
}
