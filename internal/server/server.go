package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"canvas-assistant-backend/internal/assistant"
	"canvas-assistant-backend/internal/config"
	"canvas-assistant-backend/internal/enhance"
	"canvas-assistant-backend/internal/logx"
	"canvas-assistant-backend/internal/metrics"
	"canvas-assistant-backend/internal/store"
	"canvas-assistant-backend/internal/types"
)

const maxBodyBytes = 64 << 10

type Server struct {
	router     *chi.Mux
	cfg        config.Config
	classifier *assistant.Classifier
	enhancer   enhance.Enhancer
	guard      enhance.Guard
	closers    []io.Closer
}

type Option func(*Server)

// WithEnhancer replaces the enhancer that NewServer would build from config.
func WithEnhancer(e enhance.Enhancer) Option {
	return func(s *Server) { s.enhancer = e }
}

func WithClassifier(c *assistant.Classifier) Option {
	return func(s *Server) { s.classifier = c }
}

func NewServer(cfg config.Config, opts ...Option) (*Server, error) {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	s := &Server{
		router: r,
		cfg:    cfg,
		guard:  enhance.Guard{Timeout: cfg.EnhanceTimeout, MinLength: cfg.EnhanceMinLength},
	}
	for _, o := range opts {
		o(s)
	}
	if s.classifier == nil {
		s.classifier = assistant.NewClassifier()
	}
	if s.enhancer == nil {
		e, err := s.buildEnhancer()
		if err != nil {
			s.Close()
			return nil, err
		}
		s.enhancer = e
	}
	s.routes()
	return s, nil
}

// buildEnhancer wires the OpenAI enhancer and its reply cache from config.
func (s *Server) buildEnhancer() (enhance.Enhancer, error) {
	if !s.cfg.AIEnabled() {
		logx.Info().Msg("AI enhancement disabled, serving base responses")
		return enhance.Identity{}, nil
	}
	prompt, err := enhance.LoadPromptSpec(s.cfg.EnhancePromptFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load enhancement prompt: %w", err)
	}
	var e enhance.Enhancer = enhance.NewOpenAI(s.cfg.OpenAIAPIKey, s.cfg.OpenAIBaseURL, s.cfg.Model, prompt)
	logx.Info().Str("model", s.cfg.Model).Msg("AI enhancement enabled")

	if s.cfg.CacheTTL <= 0 {
		return e, nil
	}
	var cache store.Cache
	if s.cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := store.RedisConfig{
			URL:          s.cfg.RedisURL,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			DialTimeout:  3 * time.Second,
		}.NewRedisClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to connect reply cache: %w", err)
		}
		rc := store.NewRedisCache(client)
		s.closers = append(s.closers, rc)
		cache = rc
		logx.Info().Msg("reply cache: redis")
	} else {
		cache = store.NewMemoryCache(s.cfg.CacheMaxEntries)
		logx.Info().Int("max_entries", s.cfg.CacheMaxEntries).Msg("reply cache: memory")
	}
	return enhance.NewCached(e, cache, s.cfg.CacheTTL, s.cfg.EnhanceMinLength), nil
}

func (s *Server) routes() {
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Handle("/metrics", promhttp.Handler())
}

func (s *Server) Router() http.Handler { return s.router }

// Close releases connections opened by NewServer.
func (s *Server) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			logx.Warn().Err(err).Msg("close failed")
		}
	}
	s.closers = nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, identity := s.enhancer.(enhance.Identity)
	s.writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok", AI: !identity})
}

// handleChat classifies the turn, derives suggestions, then lets the enhancer
// rephrase the reply. A body that cannot be decoded counts as an empty
// message with no context.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logx.Warn().Err(err).Str("request_id", getRequestID(r.Context())).Msg("malformed chat body, treating as empty")
		req = types.ChatRequest{}
	}

	cc := assistant.NewContext(req.LastIntent())
	res := s.classifier.Classify(req.Message, cc)
	sugg := assistant.BuildSuggestions(res.Intent)
	metrics.IntentsTotal.WithLabelValues(res.Intent.String()).Inc()
	logx.Debug().
		Str("request_id", getRequestID(r.Context())).
		Str("last_intent", cc.LastIntent.String()).
		Str("intent", res.Intent.String()).
		Msg("classified")

	reply := enhance.Safe(r.Context(), s.enhancer, enhance.Input{
		UserMessage:  req.Message,
		Intent:       res.Intent,
		BaseResponse: res.Response,
		Context:      cc,
	}, s.guard)

	resp := types.ChatResponse{
		Response:    reply,
		Intent:      res.Intent.String(),
		Rationale:   &sugg.Rationale,
		Suggestions: sugg.Chips,
	}
	if sugg.FollowUp != nil {
		f := sugg.FollowUp.String()
		resp.FollowUpIntent = &f
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorResponse{Error: msg})
}
