package ports

import (
	"context"

	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// LLMService puerto hacia el proveedor de modelos de lenguaje.
//
// BusinessInsights recibe las instantáneas de catálogo y ventas capturadas al
// momento de la llamada (una lectura desfasada respecto a mutaciones en vuelo
// es aceptable) y devuelve la respuesta en prosa del modelo.
type LLMService interface {
	BusinessInsights(ctx context.Context, products []*entity.Product, sales []*entity.Sale, question string) (string, error)
}
