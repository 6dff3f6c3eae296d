package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
	"go.uber.org/zap"

	"github.com/five82/missionboard/internal/missions"
)

// GraphQLPath is where the mock answers GraphQL requests.
const GraphQLPath = "/graphql"

const (
	maxRequestBody  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server answers MissionsQuery-shaped requests from fixtures.
type Server struct {
	fixtures []Fixture
	schema   *ast.Schema
	logger   *zap.Logger
	router   *mux.Router
}

var _ http.Handler = (*Server)(nil)

// New builds a Server over fixtures using the missions schema.
func New(fixtures []Fixture, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	schema, err := missions.Schema()
	if err != nil {
		return nil, err
	}
	s := &Server{
		fixtures: fixtures,
		schema:   schema,
		logger:   logger,
		router:   mux.NewRouter(),
	}
	s.router.Use(s.logRequests)
	s.router.HandleFunc(GraphQLPath, s.handleGraphQL).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves s on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock endpoint listening",
			zap.String("addr", addr),
			zap.Int("fixtures", len(s.fixtures)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	return nil
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data   map[string]any `json:"data,omitempty"`
	Errors gqlerror.List  `json:"errors,omitempty"`
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, gqlerror.List{gqlerror.Errorf("decode request: %v", err)})
		return
	}

	doc, errs := gqlparser.LoadQuery(s.schema, req.Query)
	if len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}
	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		writeErrors(w, http.StatusBadRequest, gqlerror.List{gqlerror.Errorf("operation %q not found", req.OperationName)})
		return
	}
	if op.Operation != ast.Query {
		writeErrors(w, http.StatusBadRequest, gqlerror.List{gqlerror.Errorf("only queries are supported")})
		return
	}
	vars, err := validator.VariableValues(s.schema, op, req.Variables)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, gqlerror.List{gqlerror.WrapPath(nil, err)})
		return
	}

	data, err := s.execute(op.SelectionSet, vars)
	if err != nil {
		writeErrors(w, http.StatusOK, gqlerror.List{gqlerror.WrapPath(nil, err)})
		return
	}
	writeJSON(w, http.StatusOK, graphQLResponse{Data: data})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "fixtures": len(s.fixtures)})
}

// logRequests is mux middleware logging one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeErrors(w http.ResponseWriter, status int, errs gqlerror.List) {
	writeJSON(w, status, graphQLResponse{Errors: errs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
