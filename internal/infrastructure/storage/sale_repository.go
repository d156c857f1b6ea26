package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.SaleRepository = (*SaleRepository)(nil)

// SaleRepository libro de ventas append-only en memoria respaldado por el KV.
// Las ventas son inmutables una vez registradas; no existe actualización ni
// borrado por diseño.
type SaleRepository struct {
	mu    sync.RWMutex
	kv    *KV
	items []*entity.Sale
}

// NewSaleRepository carga el libro desde el KV; clave ausente = libro vacío.
func NewSaleRepository(kv *KV) (*SaleRepository, error) {
	repo := &SaleRepository{kv: kv}

	raw, ok, err := kv.Get(keySales)
	if err != nil {
		return nil, err
	}
	if !ok {
		return repo, nil
	}
	if err := json.Unmarshal(raw, &repo.items); err != nil {
		return nil, fmt.Errorf("storage: libro de ventas corrupto: %w", err)
	}
	return repo, nil
}

// Append anexa la venta al final del libro.
func (r *SaleRepository) Append(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, sale)
	return r.persistLocked()
}

// All devuelve las ventas en orden cronológico de registro.
func (r *SaleRepository) All() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*entity.Sale(nil), r.items...), nil
}

// Recent devuelve las n ventas más recientes, de la más nueva a la más vieja.
func (r *SaleRepository) Recent(n int) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > len(r.items) {
		n = len(r.items)
	}
	out := make([]*entity.Sale, 0, n)
	for i := len(r.items) - 1; i >= len(r.items)-n; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

// GetByID busca una venta por id; (nil, nil) si no existe.
func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// persistLocked serializa y escribe el libro completo. Requiere r.mu.
func (r *SaleRepository) persistLocked() error {
	raw, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("storage: serializar ventas: %w", err)
	}
	return r.kv.Put(keySales, raw)
}
