// Package server exposes the category analysis over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/KaramelBytes/likelens/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// StaticPrefix is the URL prefix plot artifacts are served under.
const StaticPrefix = "/static"

// Server hosts the HTTP routes around an Analyzer.
type Server struct {
	addr   string
	engine *gin.Engine
	log    zerolog.Logger
}

// New builds the router. staticDir must be the directory the analyzer's
// artifact store writes to.
func New(addr string, analyzer *pipeline.Analyzer, staticDir string, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestID(), requestLogger(log), gin.CustomRecovery(recovery(log)), noStore(StaticPrefix))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h := NewHandler(analyzer, log)
	r.GET("/", h.Index)
	r.GET("/analyze", h.Analyze)

	api := r.Group("/api")
	api.GET("/categories", h.Categories)
	api.GET("/analyze", h.AnalyzeJSON)

	r.Static(StaticPrefix, staticDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{addr: addr, engine: r, log: log}
}

// Handler returns the gzip-wrapped root handler.
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.engine)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
