package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/application/usecase"
	"github.com/antoniotech/pos-api/internal/domain/entity"
)

func TestCatalogCreate_AplicaDefaultsDelMostrador(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeProductRepo())

	// Borrador mínimo: solo nombre y precio, como la captura rápida.
	product, err := uc.Create(dto.SaveProductRequest{
		Name:      "Azúcar Estándar 1kg",
		SalePrice: decimal.RequireFromString("28.00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID, "el alta siempre genera id nuevo")
	assert.Equal(t, entity.SaleModePiece, product.SaleMode, "modo por defecto: pieza")
	assert.Equal(t, "pz", product.Unit, "unidad por defecto: pz")
	assert.Equal(t, entity.DefaultCategories[0], product.Category,
		"categoría por defecto: la primera del catálogo de categorías")
	assert.Equal(t, entity.PlaceholderImageURL, product.ImageURL,
		"sin imagen propia se usa el placeholder")
}

func TestCatalogCreate_ModoDesconocidoCaeAPieza(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeProductRepo())

	product, err := uc.Create(dto.SaveProductRequest{Name: "X", SaleMode: "docena"})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleModePiece, product.SaleMode,
		"un saleMode no reconocido se normaliza a pieza, no se rechaza")
}

func TestCatalogCreate_RespetaCamposExplicitos(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeProductRepo())

	product, err := uc.Create(dto.SaveProductRequest{
		Name: "Frijol", SaleMode: "bulk", Unit: "kg", Category: "Granos",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleModeBulk, product.SaleMode)
	assert.Equal(t, "kg", product.Unit)
	assert.Equal(t, "Granos", product.Category)
}

func TestCatalogUpdate_IdInexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeProductRepo())

	product, err := uc.Update("no-existe", dto.SaveProductRequest{Name: "X"})

	require.NoError(t, err, "editar un id inexistente no es un error")
	assert.Nil(t, product)
}

func TestCatalogUpdate_ConservaElId(t *testing.T) {
	repo := newFakeProductRepo(productPiece("p1", "Aceite", "38.00"))
	uc := usecase.NewCatalogUseCase(repo)

	product, err := uc.Update("p1", dto.SaveProductRequest{
		Name: "Aceite Nutrioli", SalePrice: decimal.RequireFromString("40.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "p1", product.ID)
	stored, _ := repo.GetByID("p1")
	assert.Equal(t, "Aceite Nutrioli", stored.Name)
	assert.True(t, stored.SalePrice.Equal(decimal.RequireFromString("40.00")))
}

func TestCatalogDelete_NoOpSiNoExiste(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeProductRepo())

	assert.NoError(t, uc.Delete("no-existe"), "borrar un id inexistente es no-op")
}

func TestCatalogLowStock_UmbralInclusivo(t *testing.T) {
	enUmbral := productPiece("p1", "Pan", "46.00")
	enUmbral.Stock = decimal.NewFromInt(6)
	enUmbral.MinStock = decimal.NewFromInt(6)

	sobrado := productPiece("p2", "Leche", "24.00")
	sobrado.Stock = decimal.NewFromInt(72)
	sobrado.MinStock = decimal.NewFromInt(12)

	uc := usecase.NewCatalogUseCase(newFakeProductRepo(enUmbral, sobrado))

	low, err := uc.LowStock()
	require.NoError(t, err)

	require.Len(t, low, 1, "stock == minStock ya cuenta como bajo inventario")
	assert.Equal(t, "p1", low[0].ID)
}
