// Package pedidos talks to the upstream order-tracking API. Client performs a
// single fetch attempt; RetryingClient layers the backoff policy on top, so
// the retry behavior is explicit and testable on its own.
package pedidos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/config"
	"github.com/avaldez/pedidosbot/internal/domain"
)

const userAgent = "pedidosbot/1.0"

// ErrMalformed marks a 200 response whose body is missing required fields.
// Retrying will not fix a schema mismatch, so it is terminal.
var ErrMalformed = errors.New("malformed pedidos response")

// StatusError is an upstream HTTP error status other than 404.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pedidos api returned status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
}

func NewClient(cfg config.Upstream, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.PedidosURL,
		logger:     logger,
	}
}

// Fetch performs one attempt against the upstream API and extracts the order
// matching (code, requesterID). It returns domain.ErrNotFound for a 404 or a
// well-formed response without a match, ErrMalformed for an unusable body,
// and transport/status errors otherwise. It never touches the cache.
func (c *Client) Fetch(ctx context.Context, code, requesterID string) (*domain.OrderRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build pedidos request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("pedidos request failed", zap.Error(err))
		return nil, fmt.Errorf("pedidos request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("pedidos api error status", zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pedidos response: %w", err)
	}

	rec, err := extractOrder(body, code, requesterID)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			c.logger.Error("malformed pedidos response",
				zap.String("codigo", code),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return rec, nil
}

type itemPayload struct {
	Producto string `json:"producto"`
}

type pedidoPayload struct {
	ID                 json.RawMessage `json:"id_pedido"`
	Codigo             string          `json:"codigo"`
	Estado             string          `json:"estado"`
	Fecha              string          `json:"fecha"`
	FechaActualizacion string          `json:"fechaActualizacion"`
	Cliente            string          `json:"cliente"`
	PrecioTotalPedido  json.RawMessage `json:"precio_total_pedido"`
	PrecioTotal        json.RawMessage `json:"precio_total"`
	Items              []itemPayload   `json:"items"`
}

type usuarioPayload struct {
	UserID json.RawMessage `json:"user_id"`
	Datos  []pedidoPayload `json:"datos_pedido"`
}

// extractOrder handles both response shapes: a nested requester→order-list
// document under "pedidos", or a single direct record.
func extractOrder(body []byte, code, requesterID string) (*domain.OrderRecord, error) {
	var nested struct {
		Pedidos []usuarioPayload `json:"pedidos"`
	}
	if err := json.Unmarshal(body, &nested); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(nested.Pedidos) > 0 {
		return findNested(nested.Pedidos, code, requesterID)
	}

	var direct pedidoPayload
	if err := json.Unmarshal(body, &direct); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !matchesCode(&direct, code) {
		return nil, domain.ErrNotFound
	}
	return buildRecord(&direct)
}

func findNested(usuarios []usuarioPayload, code, requesterID string) (*domain.OrderRecord, error) {
	want := strings.TrimSpace(requesterID)
	for i := range usuarios {
		// Upstream stores user_id as either a number or a string.
		if rawString(usuarios[i].UserID) != want {
			continue
		}
		for j := range usuarios[i].Datos {
			if matchesCode(&usuarios[i].Datos[j], code) {
				// First match wins, in upstream order.
				return buildRecord(&usuarios[i].Datos[j])
			}
		}
	}
	return nil, domain.ErrNotFound
}

func matchesCode(p *pedidoPayload, code string) bool {
	if p.Codigo == "" && len(p.ID) == 0 {
		return false
	}
	return p.Codigo == code || rawString(p.ID) == code
}

func buildRecord(p *pedidoPayload) (*domain.OrderRecord, error) {
	if p.Estado == "" {
		return nil, fmt.Errorf("%w: missing estado", ErrMalformed)
	}

	codigo := p.Codigo
	if codigo == "" {
		codigo = rawString(p.ID)
	}

	fecha := p.Fecha
	if fecha == "" {
		fecha = p.FechaActualizacion
	}

	productos := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		productos = append(productos, item.Producto)
	}

	precio := rawString(p.PrecioTotalPedido)
	if precio == "" {
		precio = rawString(p.PrecioTotal)
	}

	return &domain.OrderRecord{
		Code:        codigo,
		Status:      p.Estado,
		UpdatedAt:   fecha,
		Product:     strings.Join(productos, ", "),
		Customer:    p.Cliente,
		TotalAmount: precio + " USD",
	}, nil
}

// rawString reads a JSON value that may be a string or a number and returns
// its text form, so "1" and 1 compare equal.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
