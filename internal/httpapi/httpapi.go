package httpapi

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/application/service"
	"github.com/avaldez/pedidosbot/internal/config"
	"github.com/avaldez/pedidosbot/internal/domain"
	"github.com/avaldez/pedidosbot/internal/intent"
	"github.com/avaldez/pedidosbot/internal/observability"
)

//go:generate mockgen -source httpapi.go -destination=httpapi_mock_test.go -package=httpapi

type Bot interface {
	Handle(ctx context.Context, from, text string) string
}

type ResolverWithStats interface {
	ResolveWithStats(ctx context.Context, code, requesterID string) (*domain.OrderRecord, service.LookupStats, error)
}

type CacheAdmin interface {
	Size() int
	Clear()
}

type Server struct {
	bot      Bot
	resolver ResolverWithStats
	cache    CacheAdmin
	admin    config.Admin
	debug    bool
	logger   *zap.Logger
	metrics  observability.Metrics
	router   chi.Router
	validate *validator.Validate
}

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func New(bot Bot, resolver ResolverWithStats, cache CacheAdmin, cfg config.Config, logger *zap.Logger, metrics observability.Metrics) *Server {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	s := &Server{
		bot:      bot,
		resolver: resolver,
		cache:    cache,
		admin:    cfg.Admin,
		debug:    cfg.Debug,
		logger:   logger,
		metrics:  metrics,
		router:   chi.NewRouter(),
		validate: v,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(ServerTimingApp(s.metrics))

	s.router.Post("/webhook", s.webhook)
	s.router.Get("/api/v1/pedido/{userID}/{codigo}", s.getPedido)
	s.router.Get("/health", s.health)
	s.router.Get("/demo", s.demo)
	s.router.With(s.basicAuth).Get("/cache/clear", s.clearCache)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// Inbound webhook payload. The text field arrives either as a plain string or
// as {"body": "..."}.
type webhookRequest struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []inboundMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type inboundMessage struct {
	From string          `json:"from"`
	Text json.RawMessage `json:"text"`
}

func (m inboundMessage) body() string {
	if len(m.Text) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Text, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(m.Text, &nested); err == nil {
		return strings.TrimSpace(nested.Body)
	}
	return ""
}

type extractedMessage struct {
	From string `validate:"required,phone"`
	Text string `validate:"required"`
}

func (s *Server) webhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Entry) == 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "Entry no puede estar vacío")
		return
	}

	if len(req.Entry[0].Changes) == 0 || len(req.Entry[0].Changes[0].Value.Messages) == 0 {
		s.logger.Error("webhook payload without messages")
		writeDetail(w, http.StatusBadRequest, "Estructura de mensaje no válida")
		return
	}

	raw := req.Entry[0].Changes[0].Value.Messages[0]
	msg := extractedMessage{From: raw.From, Text: raw.body()}

	if err := s.validate.Struct(msg); err != nil {
		if msg.Text == "" && msg.From != "" {
			writeDetail(w, http.StatusUnprocessableEntity, "Mensaje no válido o vacío")
			return
		}
		s.logger.Error("invalid inbound message", zap.Error(err))
		writeDetail(w, http.StatusBadRequest, "Estructura de mensaje no válida")
		return
	}

	s.logger.Info("inbound message",
		zap.String("from", msg.From),
		zap.Int("text_len", len(msg.Text)),
	)

	s.bot.Handle(r.Context(), msg.From, msg.Text)

	status := "Mensaje procesado correctamente"
	if intent.Classify(msg.Text).Kind == intent.Profanity {
		status = "Lenguaje inapropiado detectado"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": status,
	})
}

func (s *Server) getPedido(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	codigo := chi.URLParam(r, "codigo")

	if intent.IsProfane(userID) || intent.IsProfane(codigo) {
		writeDetail(w, http.StatusBadRequest, "Lenguaje inapropiado detectado")
		return
	}

	rec, st, err := s.resolver.ResolveWithStats(r.Context(), codigo, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("unexpected resolver error", zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Error interno")
			return
		}
		writeDetail(w, http.StatusNotFound, "Pedido con código "+codigo+" no encontrado")
		return
	}

	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "upstream", st.UpstreamMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)
	observability.SetIfPos(w, "X-Upstream-Time", st.UpstreamMs)

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"timestamp":  time.Now().Format(time.RFC3339),
		"cache_size": s.cache.Size(),
		"debug_mode": s.debug,
	})
}

func (s *Server) demo(w http.ResponseWriter, r *http.Request) {
	c := r.URL.Query().Get("case")
	if c == "" {
		c = "saludo"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"case": c,
		"url":  "/webhook?case=" + c,
		"available_cases": []string{
			"saludo", "pedido_valido", "pedido_invalido", "lenguaje_inapropiado", "ayuda",
		},
	})
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	s.cache.Clear()
	s.logger.Info("cache cleared by admin")
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Caché limpiado",
	})
}

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.admin.User)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.admin.Password)) == 1
		if !ok || !userOK || !passOK {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			writeDetail(w, http.StatusUnauthorized, "No autorizado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
