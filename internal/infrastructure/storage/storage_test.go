package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/infrastructure/storage"
)

func openTestKV(t *testing.T) *storage.KV {
	t.Helper()
	kv, err := storage.OpenKV(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "debe abrirse la base de prueba")
	return kv
}

// ──────────────────────────────────────────────────────────────────────────────
// KV
// ──────────────────────────────────────────────────────────────────────────────

func TestKV_GetClaveAusente(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("nada")

	require.NoError(t, err, "clave ausente no es un error")
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestKV_PutGetRoundtrip(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put("k", []byte(`{"hola":"mundo"}`)))

	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"hola":"mundo"}`), value)
}

func TestKV_PutSobrescribe(t *testing.T) {
	kv := openTestKV(t)
	require.NoError(t, kv.Put("k", []byte("v1")))

	require.NoError(t, kv.Put("k", []byte("v2")))

	value, _, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value, "Put es upsert: reemplaza el valor anterior")
}

func TestKV_PutAllEscribeVariasClaves(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.PutAll(map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}))

	a, _, _ := kv.Get("a")
	b, _, _ := kv.Get("b")
	assert.Equal(t, []byte("1"), a)
	assert.Equal(t, []byte("2"), b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_SiembraEnPrimeraEjecucion(t *testing.T) {
	kv := openTestKV(t)

	repo, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 5, "la primera ejecución siembra el catálogo inicial")
	assert.Equal(t, "Aceite Nutrioli 1L", products[0].Name)
	assert.Equal(t, entity.SaleModeBulk, products[2].SaleMode,
		"el frijol a granel viene en el catálogo semilla")
}

func TestProductRepository_PersisteEntreRecargas(t *testing.T) {
	kv := openTestKV(t)
	repo, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	require.NoError(t, repo.Create(&entity.Product{
		ID: "nuevo", Name: "Azúcar 1kg", Category: "Abarrotes",
		SaleMode: entity.SaleModePiece, Unit: "pz",
		SalePrice: decimal.RequireFromString("28.00"),
	}))

	// Segunda instancia sobre el mismo KV: carga lo persistido, no re-siembra.
	reloaded, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	products, err := reloaded.List()
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "Azúcar 1kg", products[5].Name, "el alta se conserva al final del catálogo")
}

func TestProductRepository_GetByIDDevuelveCopia(t *testing.T) {
	kv := openTestKV(t)
	repo, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	a, err := repo.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, a)

	// Mutar la copia no debe tocar el catálogo.
	a.Name = "mutado"
	b, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutado", b.Name, "las lecturas devuelven copias defensivas")
}

func TestProductRepository_UpdateYDeleteInexistentesSonNoOp(t *testing.T) {
	kv := openTestKV(t)
	repo, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	assert.NoError(t, repo.Update(&entity.Product{ID: "fantasma"}))
	assert.NoError(t, repo.Delete("fantasma"))

	products, _ := repo.List()
	assert.Len(t, products, 5, "el catálogo queda intacto")
}

func TestProductRepository_BusquedaNombreYCodigo(t *testing.T) {
	kv := openTestKV(t)
	repo, err := storage.NewProductRepository(kv)
	require.NoError(t, err)

	porNombre, err := repo.Search("frijol", "all")
	require.NoError(t, err)
	require.Len(t, porNombre, 1, "el nombre se compara sin distinguir mayúsculas")

	porCodigo, err := repo.Search("750100", "all")
	require.NoError(t, err)
	require.Len(t, porCodigo, 1)
	assert.Equal(t, "Aceite Nutrioli 1L", porCodigo[0].Name)

	porCategoria, err := repo.Search("", "Granos")
	require.NoError(t, err)
	assert.Len(t, porCategoria, 2, "arroz y frijol son de Granos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de ventas y cierre atómico
// ──────────────────────────────────────────────────────────────────────────────

func buildSale(id string, items ...entity.CartItem) *entity.Sale {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return &entity.Sale{
		ID: id, Timestamp: time.Now(), Items: items,
		Total: total, PaymentMethod: entity.PaymentCash,
		AmountReceived: total,
	}
}

func TestSaleRepository_ClaveAusenteEsLibroVacio(t *testing.T) {
	kv := openTestKV(t)

	repo, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaleRepository_RecentDescendente(t *testing.T) {
	kv := openTestKV(t)
	repo, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)

	require.NoError(t, repo.Append(buildSale("v1")))
	require.NoError(t, repo.Append(buildSale("v2")))
	require.NoError(t, repo.Append(buildSale("v3")))

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "v3", recent[0].ID, "la más reciente primero")
	assert.Equal(t, "v2", recent[1].ID)

	todas, err := repo.Recent(100)
	require.NoError(t, err)
	assert.Len(t, todas, 3, "pedir más de las que hay devuelve todas")
}

func TestCheckout_DescuentaStockYAnexaVenta(t *testing.T) {
	kv := openTestKV(t)
	products, err := storage.NewProductRepository(kv)
	require.NoError(t, err)
	sales, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)
	checkout := storage.NewCheckoutRepository(products, sales, kv)

	frijol, err := products.GetByID("3")
	require.NoError(t, err)
	require.NotNil(t, frijol)

	sale := buildSale("venta-1", entity.CartItem{
		Product: *frijol, Quantity: decimal.RequireFromString("2.5"),
	})
	require.NoError(t, checkout.CommitSale(sale))

	after, err := products.GetByID("3")
	require.NoError(t, err)
	assert.True(t, after.Stock.Equal(decimal.RequireFromString("42.5")),
		"stock 45 − 2.5 = 42.5")

	all, err := sales.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "venta-1", all[0].ID)
}

func TestCheckout_EscrituraVisibleTrasRecarga(t *testing.T) {
	kv := openTestKV(t)
	products, err := storage.NewProductRepository(kv)
	require.NoError(t, err)
	sales, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)
	checkout := storage.NewCheckoutRepository(products, sales, kv)

	aceite, err := products.GetByID("1")
	require.NoError(t, err)
	sale := buildSale("venta-1", entity.CartItem{
		Product: *aceite, Quantity: decimal.NewFromInt(2),
	})
	require.NoError(t, checkout.CommitSale(sale))

	// Ambas listas deben haberse persistido juntas.
	reloadedProducts, err := storage.NewProductRepository(kv)
	require.NoError(t, err)
	reloadedSales, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)

	p, err := reloadedProducts.GetByID("1")
	require.NoError(t, err)
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(118)), "stock 120 − 2 = 118")

	all, err := reloadedSales.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Total.Equal(decimal.RequireFromString("76.00")))
}

func TestCheckout_StockPuedeQuedarNegativo(t *testing.T) {
	kv := openTestKV(t)
	products, err := storage.NewProductRepository(kv)
	require.NoError(t, err)
	sales, err := storage.NewSaleRepository(kv)
	require.NoError(t, err)
	checkout := storage.NewCheckoutRepository(products, sales, kv)

	pan, err := products.GetByID("5") // stock 15
	require.NoError(t, err)
	sale := buildSale("venta-1", entity.CartItem{
		Product: *pan, Quantity: decimal.NewFromInt(20),
	})
	require.NoError(t, checkout.CommitSale(sale), "la sobreventa no se rechaza")

	after, err := products.GetByID("5")
	require.NoError(t, err)
	assert.True(t, after.Stock.Equal(decimal.NewFromInt(-5)),
		"no hay piso en cero: 15 − 20 = −5")
}
