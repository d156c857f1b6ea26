package usecase

import (
	"github.com/google/uuid"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD y búsqueda del catálogo de productos.
//
// El alta y la edición son permisivas: los campos ausentes del borrador se
// rellenan con defaults en lugar de rechazarse (igual que la captura rápida
// del mostrador). Editar o borrar un id inexistente es un no-op silencioso.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create da de alta un producto con id nuevo y defaults para campos ausentes.
func (uc *CatalogUseCase) Create(in dto.SaveProductRequest) (*entity.Product, error) {
	product := fromDraft(uuid.New().String(), in)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update reemplaza el producto con el id dado conservando el id.
// Devuelve (nil, nil) si el id no existe.
func (uc *CatalogUseCase) Update(id string, in dto.SaveProductRequest) (*entity.Product, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	product := fromDraft(id, in)
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina el producto; no-op si no existe. Las ventas históricas
// conservan su propia copia de los artículos, así que no hay cascada.
func (uc *CatalogUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Search busca por subcadena en nombre (sin distinguir mayúsculas) o en código,
// con filtro de categoría salvo el centinela "all".
func (uc *CatalogUseCase) Search(term, category string) ([]*entity.Product, error) {
	return uc.repo.Search(term, category)
}

// LowStock devuelve los productos en o por debajo de su umbral de resurtido,
// en el orden del catálogo.
func (uc *CatalogUseCase) LowStock() ([]*entity.Product, error) {
	return uc.repo.LowStock()
}

// fromDraft materializa el borrador aplicando los defaults del mostrador.
func fromDraft(id string, in dto.SaveProductRequest) *entity.Product {
	mode := entity.SaleMode(in.SaleMode)
	if mode != entity.SaleModePiece && mode != entity.SaleModeBulk && mode != entity.SaleModePack {
		mode = entity.SaleModePiece
	}
	unit := in.Unit
	if unit == "" {
		unit = "pz"
	}
	category := in.Category
	if category == "" {
		category = entity.DefaultCategories[0]
	}
	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = entity.PlaceholderImageURL
	}
	return &entity.Product{
		ID:            id,
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		Category:      category,
		SaleMode:      mode,
		Unit:          unit,
		Stock:         in.Stock,
		MinStock:      in.MinStock,
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		ImageURL:      imageURL,
	}
}
