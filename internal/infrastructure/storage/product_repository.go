package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// Verificación en tiempo de compilación del puerto.
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository catálogo en memoria respaldado por el KV: cada mutación
// reescribe la entrada completa de productos.
type ProductRepository struct {
	mu    sync.RWMutex
	kv    *KV
	items []*entity.Product
}

// NewProductRepository carga el catálogo desde el KV. Si la clave no existe
// todavía, siembra el catálogo inicial de la tienda y lo persiste.
func NewProductRepository(kv *KV) (*ProductRepository, error) {
	repo := &ProductRepository{kv: kv}

	raw, ok, err := kv.Get(keyProducts)
	if err != nil {
		return nil, err
	}
	if !ok {
		repo.items = seedProducts()
		if err := repo.persistLocked(); err != nil {
			return nil, err
		}
		return repo, nil
	}
	if err := json.Unmarshal(raw, &repo.items); err != nil {
		return nil, fmt.Errorf("storage: catálogo corrupto: %w", err)
	}
	return repo, nil
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.items = append(r.items, &clone)
	return r.persistLocked()
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

// Update reemplaza en su lugar el registro con el mismo id; no-op si no existe.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == product.ID {
			clone := *product
			r.items[i] = &clone
			return r.persistLocked()
		}
	}
	return nil
}

// Delete elimina el registro; no-op si no existe. No hay cascada hacia las
// ventas históricas: cada venta conserva su propia copia de los artículos.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persistLocked()
		}
	}
	return nil
}

// List devuelve copias de todo el catálogo en orden de alta.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.items), nil
}

// Search subcadena sin distinguir mayúsculas sobre el nombre, O subcadena
// exacta sobre el código; filtro de categoría salvo el centinela "all".
func (r *ProductRepository) Search(term, category string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	filterCategory := category != "" && category != repository.CategoryAll

	var out []*entity.Product
	for _, p := range r.items {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), lowered) &&
			!strings.Contains(p.Code, term) {
			continue
		}
		if filterCategory && p.Category != category {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// LowStock productos con stock <= minStock, en el orden del catálogo
// (sin ordenar por severidad).
func (r *ProductRepository) LowStock() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Product
	for _, p := range r.items {
		if p.IsLowStock() {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

// persistLocked serializa y escribe el catálogo completo. Requiere r.mu.
func (r *ProductRepository) persistLocked() error {
	raw, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("storage: serializar catálogo: %w", err)
	}
	return r.kv.Put(keyProducts, raw)
}

func cloneAll(items []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, len(items))
	for i, p := range items {
		clone := *p
		out[i] = &clone
	}
	return out
}
