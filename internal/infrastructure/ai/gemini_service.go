// Package ai contiene el adaptador hacia el proveedor de modelos de lenguaje
// (Google Gemini vía su API REST). Usa únicamente net/http de la librería
// estándar; no requiere el SDK oficial.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antoniotech/pos-api/internal/application/ports"
	"github.com/antoniotech/pos-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// promptTemplate preámbulo fijo del consultor de negocio. Embebe el inventario
// completo, las ventas recientes y la solicitud del gerente; la respuesta es
// prosa libre en español de México.
const promptTemplate = `Eres el consultor experto de Inteligencia de Negocios para "%s".
Tu objetivo es maximizar la rentabilidad del mayorista.

CONTEXTO DEL NEGOCIO:
Inventario Actual: %s
Ventas Recientes: %s

SOLICITUD DEL GERENTE: "%s"

REGLAS DE RESPUESTA:
1. Identifica productos estrella y productos "hueso" (baja rotación).
2. Sugiere ofertas cruzadas (ej: si compran café, ofrecer azúcar).
3. Alerta sobre caducidades próximas o quiebres de stock.
4. Sé directo, profesional y utiliza métricas financieras básicas.
5. Responde en español de México.`

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	storeName  string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven un error descriptivo en lugar
// de fallar en producción.
func NewGeminiService(apiKey, model, storeName string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		model:     model,
		storeName: storeName,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // sin streaming: una sola respuesta completa
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float32 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// BusinessInsights envía el prompt con las instantáneas embebidas y devuelve
// la prosa del modelo. Una sola llamada bloqueante, sin reintentos; cualquier
// fallo sube como error y el caso de uso lo degrada al mensaje fijo.
func (s *GeminiService) BusinessInsights(
	ctx context.Context,
	products []*entity.Product,
	sales []*entity.Sale,
	question string,
) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	inventoryJSON, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("AI: serializar inventario: %w", err)
	}
	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return "", fmt.Errorf("AI: serializar ventas: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate, s.storeName, inventoryJSON, salesJSON, question)

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: genConfig{Temperature: 0.7},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
