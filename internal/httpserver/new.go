package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"egy-discovery/config"
	"egy-discovery/pkg/extractor"
	"egy-discovery/pkg/log"
	"egy-discovery/pkg/n8n"
	"egy-discovery/pkg/openai"
	"egy-discovery/pkg/sequence"

	"github.com/gin-gonic/gin"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Outbound clients, nil when not configured
	aiClient  openai.IOpenAI
	n8nClient n8n.IN8N
	extractor extractor.IExtractor

	openAI    config.OpenAIConfig
	n8n       config.N8NConfig
	features  config.FeaturesConfig
	staticDir string

	// One sequence for every record store.
	seq *sequence.Sequence
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	AIClient  openai.IOpenAI
	N8NClient n8n.IN8N
	Extractor extractor.IExtractor

	OpenAI   config.OpenAIConfig
	N8N      config.N8NConfig
	Features config.FeaturesConfig
	Static   config.StaticConfig
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		aiClient:    cfg.AIClient,
		n8nClient:   cfg.N8NClient,
		extractor:   cfg.Extractor,
		openAI:      cfg.OpenAI,
		n8n:         cfg.N8N,
		features:    cfg.Features,
		staticDir:   resolveStaticDir(cfg.Static),
		seq:         sequence.New(1),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}
	if srv.n8nClient == nil {
		return errors.New("n8n client is required")
	}
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown: %w", err)
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 15 * time.Second
)
