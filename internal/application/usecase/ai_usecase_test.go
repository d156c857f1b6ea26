package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniotech/pos-api/internal/application/usecase"
	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/pkg/logger"
)

// fakeLLM registra lo que recibe y responde lo configurado.
type fakeLLM struct {
	answer       string
	err          error
	gotProducts  []*entity.Product
	gotSales     []*entity.Sale
	gotQuestion  string
	invocaciones int
}

func (f *fakeLLM) BusinessInsights(ctx context.Context, products []*entity.Product, sales []*entity.Sale, question string) (string, error) {
	f.invocaciones++
	f.gotProducts = products
	f.gotSales = sales
	f.gotQuestion = question
	return f.answer, f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestAIAsk_RespuestaExitosa(t *testing.T) {
	llm := &fakeLLM{answer: "Tu producto estrella es el frijol a granel."}
	uc := usecase.NewAIUseCase(llm, newFakeProductRepo(), &fakeSaleRepo{}, testLogger())

	answer := uc.Ask(context.Background(), "¿qué producto se vende más?")

	assert.Equal(t, "Tu producto estrella es el frijol a granel.", answer)
	assert.Equal(t, "¿qué producto se vende más?", llm.gotQuestion)
	assert.Equal(t, 1, llm.invocaciones, "una sola llamada, sin reintentos")
}

func TestAIAsk_FalloDelProveedorDevuelveMensajeFijo(t *testing.T) {
	llm := &fakeLLM{err: errors.New("429 too many requests")}
	uc := usecase.NewAIUseCase(llm, newFakeProductRepo(), &fakeSaleRepo{}, testLogger())

	answer := uc.Ask(context.Background(), "¿cómo va la semana?")

	assert.Equal(t, usecase.InsightsFallback, answer,
		"cualquier fallo del proveedor se traduce al mensaje fijo de respaldo")
}

func TestAIAsk_VentanaDeUltimas50Ventas(t *testing.T) {
	sales := &fakeSaleRepo{}
	for i := 0; i < 60; i++ {
		sales.items = append(sales.items, &entity.Sale{
			ID:        fmt.Sprintf("v-%02d", i),
			Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
			Total:     decimal.NewFromInt(10),
		})
	}
	llm := &fakeLLM{answer: "ok"}
	uc := usecase.NewAIUseCase(llm, newFakeProductRepo(), sales, testLogger())

	uc.Ask(context.Background(), "resumen")

	require.Len(t, llm.gotSales, 50, "al prompt viajan a lo más 50 ventas")
	assert.Equal(t, "v-10", llm.gotSales[0].ID,
		"la ventana es la cola cronológica: se descartan las más antiguas")
	assert.Equal(t, "v-59", llm.gotSales[49].ID)
}

func TestAIAsk_CatalogoCompletoEnElPrompt(t *testing.T) {
	repo := newFakeProductRepo(
		productPiece("p1", "Aceite", "38.00"),
		productPiece("p2", "Leche", "24.00"),
	)
	llm := &fakeLLM{answer: "ok"}
	uc := usecase.NewAIUseCase(llm, repo, &fakeSaleRepo{}, testLogger())

	uc.Ask(context.Background(), "inventario")

	assert.Len(t, llm.gotProducts, 2, "el catálogo viaja completo, sin ventana")
}
