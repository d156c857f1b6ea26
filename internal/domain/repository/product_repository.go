package repository

import "github.com/antoniotech/pos-api/internal/domain/entity"

// CategoryAll es el valor centinela de categoría que desactiva el filtro de búsqueda.
const CategoryAll = "all"

// ProductRepository define el puerto de persistencia del catálogo (DIP).
//
// Update y Delete sobre un id inexistente son no-ops silenciosos, no errores:
// el comportamiento permisivo es parte del contrato del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error) // (nil, nil) si no existe
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error) // orden de alta del catálogo
	Search(term, category string) ([]*entity.Product, error)
	LowStock() ([]*entity.Product, error)
}
