package usecase

import (
	"context"

	"github.com/antoniotech/pos-api/internal/application/ports"
	"github.com/antoniotech/pos-api/internal/domain/entity"
	"github.com/antoniotech/pos-api/internal/domain/repository"
	"github.com/antoniotech/pos-api/pkg/logger"
)

// recentSalesWindow cuántas ventas recientes viajan en el prompt.
const recentSalesWindow = 50

// InsightsFallback mensaje fijo que recibe el usuario ante cualquier fallo del
// proveedor de IA (red, cuota, respuesta malformada). El llamador nunca tiene
// que manejar un error estructurado.
const InsightsFallback = "Error en el razonamiento profundo de la IA. Por favor, intenta una consulta más simple."

// AIUseCase pasarela de consultas de negocio al modelo de lenguaje.
//
// Captura instantáneas del catálogo completo y de las últimas 50 ventas al
// momento de la llamada; mutaciones concurrentes no afectan la petición en
// vuelo (una lectura desfasada es esperada, no un bug). Una sola llamada
// bloqueante, sin reintentos.
type AIUseCase struct {
	llm      ports.LLMService
	products repository.ProductRepository
	sales    repository.SaleRepository
	log      *logger.Logger
}

// NewAIUseCase construye la pasarela.
func NewAIUseCase(llm ports.LLMService, products repository.ProductRepository, sales repository.SaleRepository, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, products: products, sales: sales, log: log}
}

// Ask responde una pregunta de negocio en lenguaje natural. Siempre devuelve
// texto para el usuario: en cualquier fallo regresa el mensaje fijo de
// respaldo en lugar de propagar el error.
func (uc *AIUseCase) Ask(ctx context.Context, question string) string {
	products, err := uc.products.List()
	if err != nil {
		uc.log.Warn().Err(err).Msg("asistente IA: leer catálogo")
		return InsightsFallback
	}
	sales, err := uc.sales.All()
	if err != nil {
		uc.log.Warn().Err(err).Msg("asistente IA: leer ventas")
		return InsightsFallback
	}

	answer, err := uc.llm.BusinessInsights(ctx, products, lastN(sales, recentSalesWindow), question)
	if err != nil {
		uc.log.Warn().Err(err).Str("question", question).Msg("asistente IA: llamada al modelo fallida")
		return InsightsFallback
	}
	return answer
}

// lastN cola de las n ventas más recientes en orden cronológico.
func lastN(sales []*entity.Sale, n int) []*entity.Sale {
	if len(sales) <= n {
		return sales
	}
	return sales[len(sales)-n:]
}
