package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/wheeltag/pkg/cache"
	"github.com/matzehuels/wheeltag/pkg/errors"
	"github.com/matzehuels/wheeltag/pkg/observability"
	"github.com/matzehuels/wheeltag/pkg/tags"
	"github.com/matzehuels/wheeltag/pkg/wheels"
)

// tagsCacheTTL bounds how long a computed tag sequence is reused. The
// computation is deterministic, the bound just keeps stale entries from
// accumulating forever.
const tagsCacheTTL = 24 * time.Hour

// Server answers tag engine queries over HTTP.
type Server struct {
	logger *log.Logger
	store  cache.Cache
	router chi.Router
}

// NewServer creates a server backed by the given cache. A nil store
// disables caching.
func NewServer(logger *log.Logger, store cache.Cache) *Server {
	if store == nil {
		store = cache.NewNullCache()
	}
	s := &Server{logger: logger, store: store}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/v1/tags", s.handleTags)
	r.Get("/v1/parse", s.handleParse)
	r.Post("/v1/check", s.handleCheck)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestID assigns each request a UUID, echoed in the X-Request-Id header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// logRequests logs one line per request and feeds the request hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Request().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.Request().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("Request",
			"id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// tagsResponse is the body of GET /v1/tags.
type tagsResponse struct {
	Environment envPayload `json:"environment"`
	Interpreter string     `json:"interpreter"`
	Tags        []string   `json:"tags"`
}

// handleTags computes the ordered tag sequence for the environment in the
// query parameters.
func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	payload, err := envFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := s.tagsFor(r.Context(), payload)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// tagsFor computes (or recalls) the tag sequence for a payload.
func (s *Server) tagsFor(ctx context.Context, payload envPayload) (*tagsResponse, error) {
	key := cache.Key("tags", payload.cacheKey())
	if data, ok, err := s.store.Get(ctx, key); err == nil && ok {
		var resp tagsResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
	}

	env, err := payload.environment()
	if err != nil {
		return nil, err
	}
	seq, err := tags.SysTags(*env)
	if err != nil {
		return nil, err
	}

	resp := &tagsResponse{
		Environment: payload,
		Interpreter: env.InterpreterTag(),
		Tags:        make([]string, len(seq)),
	}
	for i, t := range seq {
		resp.Tags[i] = t.String()
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := s.store.Set(ctx, key, data, tagsCacheTTL); err != nil {
			s.logger.Warn("Caching tag sequence failed", "error", err)
		}
	}
	return resp, nil
}

// parseResponse is the body of GET /v1/parse.
type parseResponse struct {
	Input string   `json:"input"`
	Tags  []string `json:"tags"`
}

// handleParse expands ?tag= or ?wheel= into concrete tags.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tag, wheel := q.Get("tag"), q.Get("wheel")

	var (
		input string
		set   tags.Set
		err   error
	)
	switch {
	case tag != "" && wheel != "":
		err = errors.New(errors.ErrCodeInvalidInput, "pass either %q or %q, not both", "tag", "wheel")
	case tag != "":
		input = tag
		set, err = tags.ParseTag(tag)
	case wheel != "":
		input = wheel
		set, err = tags.ParseWheelFilename(wheel)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "missing %q or %q parameter", "tag", "wheel")
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sorted := set.Sorted()
	resp := parseResponse{Input: input, Tags: make([]string, len(sorted))}
	for i, t := range sorted {
		resp.Tags[i] = t.String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// checkRequest is the body of POST /v1/check.
type checkRequest struct {
	Environment envPayload `json:"environment"`
	Wheels      []string   `json:"wheels"`
}

// checkResponse is the body of POST /v1/check.
type checkResponse struct {
	Interpreter string          `json:"interpreter"`
	Results     []wheels.Result `json:"results"`
}

// handleCheck matches wheel filenames against an environment's sequence.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(req.Wheels) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "no wheels given"))
		return
	}

	tr, err := s.tagsFor(r.Context(), req.Environment)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// Wire forms are always three dash-free components joined by dashes,
	// so this round-trips exactly even for cached sequences.
	seq := make([]tags.Tag, len(tr.Tags))
	for i, raw := range tr.Tags {
		parts := strings.SplitN(raw, "-", 3)
		seq[i] = tags.NewTag(parts[0], parts[1], parts[2])
	}

	resp := checkResponse{Interpreter: tr.Interpreter}
	for _, name := range req.Wheels {
		resp.Results = append(resp.Results, wheels.Check(seq, name))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps an error onto an HTTP status and the error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "id", requestIDFrom(r.Context()), "error", err)
		code = errors.ErrCodeInternal
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, body)
}

// statusFor maps error codes onto HTTP statuses. Malformed requests are
// 400; well-formed inputs the engine rejects are 422.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidTag, errors.ErrCodeInvalidFilename,
		errors.ErrCodeInvalidEnv, errors.ErrCodeUnsupportedAbi:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Encoding response failed", "error", err)
	}
}
