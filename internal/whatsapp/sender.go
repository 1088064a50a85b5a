// Package whatsapp dispatches replies through the outbound messaging API.
// Delivery is best effort: failures are logged and reported to the breaker,
// never surfaced into the resolution pipeline.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/config"
	"github.com/avaldez/pedidosbot/internal/observability"
	"github.com/avaldez/pedidosbot/internal/pkg/breaker"
)

type textBody struct {
	Body string `json:"body"`
}

type messagePayload struct {
	To   string   `json:"to"`
	Type string   `json:"type"`
	Text textBody `json:"text"`
}

type Sender struct {
	httpClient *http.Client
	url        string
	token      string
	breaker    *breaker.Breaker
	logger     *zap.Logger
	metrics    observability.Metrics
}

func NewSender(cfg config.WhatsApp, brk *breaker.Breaker, logger *zap.Logger, metrics observability.Metrics) *Sender {
	return &Sender{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.APIURL,
		token:      cfg.Token,
		breaker:    brk,
		logger:     logger,
		metrics:    metrics,
	}
}

func (s *Sender) Send(ctx context.Context, to, text string) error {
	if err := s.breaker.Allow(); err != nil {
		s.logger.Warn("send skipped, breaker open", zap.String("to", to))
		return err
	}

	body, err := json.Marshal(messagePayload{
		To:   to,
		Type: "text",
		Text: textBody{Body: text},
	})
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	durMs := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		s.breaker.Failure()
		s.metrics.ObserveSend(durMs, false)
		s.logger.Error("whatsapp request failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("whatsapp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.breaker.Failure()
		s.metrics.ObserveSend(durMs, false)
		s.logger.Error("whatsapp api error status",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}

	s.breaker.Success()
	s.metrics.ObserveSend(durMs, true)
	s.logger.Info("message sent", zap.String("to", to), zap.Float64("dur_ms", durMs))
	return nil
}
