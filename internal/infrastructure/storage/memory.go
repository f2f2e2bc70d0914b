package storage

import (
	"bytes"
	"context"
	"sync"
)

var _ TxStore = (*MemoryStore)(nil)

// MemoryStore backend en memoria. Las transacciones toman el mutex completo y
// aplican los cambios al final, de modo que un fallo no deja escrituras parciales.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor guardado.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

// Set guarda una copia del valor.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = bytes.Clone(value)
	return nil
}

// Delete elimina la clave; no falla si no existe.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// InTx ejecuta fn sobre una vista con escrituras diferidas y las aplica solo si fn termina sin error.
func (s *MemoryStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{base: s.data, writes: make(map[string][]byte), deleted: make(map[string]bool)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for k := range tx.deleted {
		delete(s.data, k)
	}
	for k, v := range tx.writes {
		s.data[k] = v
	}
	return nil
}

// memoryTx vista transaccional; solo se usa mientras MemoryStore.mu está tomado.
type memoryTx struct {
	base    map[string][]byte
	writes  map[string][]byte
	deleted map[string]bool
}

func (t *memoryTx) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := t.writes[key]; ok {
		return bytes.Clone(v), nil
	}
	if t.deleted[key] {
		return nil, ErrKeyNotFound
	}
	v, ok := t.base[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (t *memoryTx) Set(_ context.Context, key string, value []byte) error {
	delete(t.deleted, key)
	t.writes[key] = bytes.Clone(value)
	return nil
}

func (t *memoryTx) Delete(_ context.Context, key string) error {
	delete(t.writes, key)
	t.deleted[key] = true
	return nil
}
