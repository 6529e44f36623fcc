package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/factlane/factlane/internal/logging"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/dispatch"
	"github.com/factlane/factlane/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the two workflow dispatchers over a JSON API.
type Server struct {
	reviews *dispatch.Dispatcher
	claims  *dispatch.Dispatcher
	captcha ports.CaptchaValidator
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithCaptcha enables captcha validation of submitted events.
func WithCaptcha(validator ports.CaptchaValidator) Option {
	return func(s *Server) {
		s.captcha = validator
	}
}

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(reviews, claims *dispatch.Dispatcher, opts ...Option) http.Handler {
	s := &Server{
		reviews: reviews,
		claims:  claims,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/review-tasks/{hash}", func(r chi.Router) {
		r.Get("/", s.getSnapshot(s.reviews))
		r.Post("/events", s.postEvent(s.reviews))
	})
	r.Route("/api/claims/{hash}", func(r chi.Router) {
		r.Get("/", s.getSnapshot(s.claims))
		r.Post("/events", s.postEvent(s.claims))
	})

	return r
}

// snapshotResponse is the wire form of a snapshot.
type snapshotResponse struct {
	Value   domain.StateValue `json:"value"`
	Context domain.Context    `json:"context"`
}

// errorResponse carries an error plus, for side-effect failures, the
// snapshot that was already persisted before the failure.
type errorResponse struct {
	Error    string            `json:"error"`
	Snapshot *snapshotResponse `json:"snapshot,omitempty"`
}

func (s *Server) getSnapshot(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := chi.URLParam(r, "hash")

		snap, err := d.Get(r.Context(), hash)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, err, nil)
				return
			}
			s.logger.Error("snapshot lookup failed", "hash", hash, "err", err)
			writeError(w, http.StatusInternalServerError, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(snap))
	}
}

func (s *Server) postEvent(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := chi.URLParam(r, "hash")

		var ev domain.Event
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			s.logger.Warn("invalid request body", "hash", hash, "err", err)
			writeError(w, http.StatusBadRequest, errors.New("invalid request body"), nil)
			return
		}
		if ev.Type == "" {
			writeError(w, http.StatusBadRequest, errors.New("event type is required"), nil)
			return
		}

		if s.captcha != nil {
			ok, err := s.captcha.Validate(r.Context(), ev.Recaptcha)
			if err != nil {
				s.logger.Error("captcha validation failed", "hash", hash, "err", err)
				writeError(w, http.StatusInternalServerError, errors.New("captcha validation failed"), nil)
				return
			}
			if !ok {
				writeError(w, http.StatusBadRequest, errors.New("captcha rejected"), nil)
				return
			}
		}

		snap, err := d.Dispatch(r.Context(), hash, ev)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrMalformedPayload):
				writeError(w, http.StatusUnprocessableEntity, err, nil)
			case errors.Is(err, domain.ErrSideEffect):
				// The snapshot write already succeeded; report the advanced
				// state so the caller can retry only the side effect.
				s.logger.Error("side effect failed", "hash", hash, "err", err)
				writeError(w, http.StatusBadGateway, err, snap)
			default:
				s.logger.Error("dispatch failed", "hash", hash, "event", ev.Type, "err", err)
				writeError(w, http.StatusInternalServerError, err, nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, toResponse(snap))
	}
}

func toResponse(snap *domain.Snapshot) *snapshotResponse {
	return &snapshotResponse{
		Value:   snap.Value,
		Context: snap.Context,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error, snap *domain.Snapshot) {
	resp := errorResponse{Error: err.Error()}
	if snap != nil {
		resp.Snapshot = toResponse(snap)
	}
	writeJSON(w, status, resp)
}
