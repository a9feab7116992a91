package preview

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vbind/internal/config"
	"github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/dom"
	"github.com/vango-dev/vbind/pkg/metrics"
)

const (
	// MsgpackContentType is the content type of encoded patch batches.
	MsgpackContentType = "application/vnd.msgpack"

	shutdownTimeout = 5 * time.Second
)

// Server renders the demo into an in-memory document and streams every
// change to browsers as patch batches.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Observer
	tracer   trace.Tracer

	// mu orders renders, broadcasts and client joins.
	mu    sync.Mutex
	doc   *dom.Document
	batch *dom.Batcher
	demo  *Demo
	hub   *Hub

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the registry metrics are registered with and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// New builds the demo document and the HTTP routes for cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
		batch:  &dom.Batcher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	docOpts := []dom.Option{dom.WithHydrationIDs()}
	var recorder Recorder
	if cfg.Metrics.Enabled {
		s.metrics = metrics.New(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithRegistry(s.registry),
		)
		docOpts = append(docOpts, dom.WithObserver(s.metrics))
		recorder = s.metrics
	}

	if cfg.Tracing.Enabled {
		s.tracer = otel.Tracer(cfg.Tracing.Name)
	} else {
		s.tracer = noop.NewTracerProvider().Tracer(cfg.Tracing.Name)
	}

	s.doc = dom.NewDocument(docOpts...)
	f := dom.NewRecordingFactory(s.doc, s.batch.Add)
	s.demo = NewDemo(f)
	s.demo.Root().Mount(f)
	// Clients start from a snapshot, so the construction patches are dropped.
	s.batch.Flush()

	s.hub = NewHub(recorder, s.logger)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/snapshot", s.handleSnapshot)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Handler returns the HTTP handler serving the preview.
func (s *Server) Handler() http.Handler { return s.router }

// Document returns the server's document.
func (s *Server) Document() *dom.Document { return s.doc }

// Demo returns the demo bound to the document.
func (s *Server) Demo() *Demo { return s.demo }

// Hub returns the client hub.
func (s *Server) Hub() *Hub { return s.hub }

// Step advances the demo once and broadcasts the resulting batch. It returns
// the number of patches produced.
func (s *Server) Step(ctx context.Context) int {
	_, span := s.tracer.Start(ctx, "preview.render")
	s.mu.Lock()
	defer s.mu.Unlock()

	s.demo.Step()
	batch, ok := s.batch.Flush()
	span.SetAttributes(attribute.Int("vbind.patch_count", len(batch.Patches)))
	span.End()
	if !ok {
		return 0
	}

	data, err := batch.Encode()
	if err != nil {
		s.logger.Error("encode patch batch", "seq", batch.Seq, "error", err)
		return len(batch.Patches)
	}

	_, bspan := s.tracer.Start(ctx, "preview.broadcast")
	start := time.Now()
	sent := s.hub.Broadcast(data)
	bspan.SetAttributes(attribute.Int("vbind.clients", sent))
	bspan.End()

	if s.metrics != nil {
		s.metrics.ObserveBroadcast(time.Since(start))
		s.metrics.PatchesSent(len(batch.Patches) * sent)
	}
	s.logger.Debug("broadcast", "seq", batch.Seq, "patches", len(batch.Patches), "clients", sent)
	return len(batch.Patches)
}

// snapshotLocked encodes a reset batch for the current tree. s.mu must be held.
func (s *Server) snapshotLocked() ([]byte, error) {
	return dom.PatchBatch{
		Seq:     s.batch.Seq(),
		Patches: s.doc.Snapshot(),
		Reset:   true,
	}.Encode()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	body := s.doc.String()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := writePage(&buf, "vbind preview", body); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, err := s.snapshotLocked()
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("encode snapshot", "error", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", MsgpackContentType)
	w.Write(data)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.Upgrade(w, r)
	if err != nil {
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}

	s.mu.Lock()
	hello, err := s.snapshotLocked()
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("encode snapshot", "error", err)
		conn.Close()
		return
	}
	c, err := s.hub.join(conn, hello)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("websocket hello", "error", err)
		return
	}
	s.hub.serve(c)
}

// Run serves the preview on the configured address and steps the demo every
// tick until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	ticker := time.NewTicker(s.cfg.Server.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.shutdown(srv)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			s.close()
			return errors.New("E140").Wrap(err)
		case <-ticker.C:
			s.Step(ctx)
		}
	}
}

func (s *Server) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hub.Close()
	err := srv.Shutdown(ctx)
	s.close()
	s.logger.Info("preview server stopped")
	return err
}

func (s *Server) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.demo.Dispose()
	s.logger.Debug("demo disposed", "bindings", n)
}
