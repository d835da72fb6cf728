// Package server hosts a generated document behind the Swagger UI on one of
// the supported Go routers.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/swaggerui"
	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc/adapters"
)

// RequestIDHeader carries the per-request identifier on every response
const RequestIDHeader = "X-Request-ID"

// Server serves one document with the configured router
type Server struct {
	config  *Config
	metrics *Metrics
	handler http.Handler
	fiber   *fiber.App
}

// New builds the router for config.Kind with the UI mounted at config.Base
// and "/" redirecting to it
func New(doc *openapi.Document, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	config.Base = swaggerui.NormalizeBase(config.Base)
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	kind, err := ParseKind(string(config.Kind))
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Server{config: config}
	if config.EnableMetrics {
		s.metrics = NewMetrics(kind, config.Base)
	}
	switch kind {
	case KindGin:
		err = s.buildGin(doc)
	case KindEcho:
		err = s.buildEcho(doc)
	case KindFiber:
		err = s.buildFiber(doc)
	case KindChi:
		err = s.buildChi(doc)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ServerErrorCode, "failed to mount swagger UI", err).
			WithContext("server", string(kind))
	}
	return s, nil
}

// Handler returns the net/http handler, or nil for Fiber
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Fiber returns the Fiber app, or nil for the net/http based kinds
func (s *Server) Fiber() *fiber.App {
	return s.fiber
}

// Metrics returns the request metrics, or nil when they are disabled
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Config returns the effective configuration
func (s *Server) Config() *Config {
	return s.config
}

func (s *Server) buildGin(doc *openapi.Document) error {
	r := gin.New()
	if s.config.EnableRecover {
		r.Use(gin.Recovery())
	}
	r.Use(func(c *gin.Context) {
		c.Header(RequestIDHeader, requestID(c.GetHeader(RequestIDHeader)))
		c.Next()
	})
	if s.metrics != nil {
		r.Use(func(c *gin.Context) {
			start := time.Now()
			c.Next()
			s.metrics.Observe(c.Request.URL.Path, c.Writer.Status(), time.Since(start))
		})
		r.GET(MetricsPath, gin.WrapH(s.metrics.Handler()))
	}
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, s.config.Base)
	})

	s.handler = r
	return adapters.MountGin(r, doc, s.config.Base)
}

func (s *Server) buildEcho(doc *openapi.Document) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if s.config.EnableRecover {
		e.Use(middleware.Recover())
	}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: RequestIDHeader,
	}))
	if s.metrics != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				start := time.Now()
				err := next(c)
				status := c.Response().Status
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
				s.metrics.Observe(c.Request().URL.Path, status, time.Since(start))
				return err
			}
		})
		e.GET(MetricsPath, echo.WrapHandler(s.metrics.Handler()))
	}
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, s.config.Base)
	})

	s.handler = e
	return adapters.MountEcho(e, doc, s.config.Base)
}

func (s *Server) buildFiber(doc *openapi.Document) error {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	if s.config.EnableRecover {
		app.Use(fiberrecover.New())
	}
	app.Use(requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	}))
	if s.metrics != nil {
		app.Use(func(c *fiber.Ctx) error {
			start := time.Now()
			err := c.Next()
			status := c.Response().StatusCode()
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
			s.metrics.Observe(c.Path(), status, time.Since(start))
			return err
		})
		app.Get(MetricsPath, adaptor.HTTPHandler(s.metrics.Handler()))
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(s.config.Base, fiber.StatusFound)
	})

	s.fiber = app
	return adapters.MountFiber(app, doc, s.config.Base)
}

func (s *Server) buildChi(doc *openapi.Document) error {
	r := chi.NewRouter()
	if s.config.EnableRecover {
		r.Use(chimiddleware.Recoverer)
	}
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set(RequestIDHeader, requestID(req.Header.Get(RequestIDHeader)))
			next.ServeHTTP(w, req)
		})
	})
	if s.metrics != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				start := time.Now()
				ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
				next.ServeHTTP(ww, req)
				s.metrics.Observe(req.URL.Path, ww.Status(), time.Since(start))
			})
		})
		r.Get(MetricsPath, s.metrics.Handler().ServeHTTP)
	}
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, s.config.Base, http.StatusFound)
	})

	s.handler = r
	return adapters.MountChi(r, doc, s.config.Base)
}

// requestID keeps an incoming identifier or generates a new one
func requestID(incoming string) string {
	if incoming != "" {
		return incoming
	}
	return uuid.NewString()
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down within ShutdownTimeout. ready, when set, receives the bound
// address once the listener is open.
func (s *Server) Run(ctx context.Context, ready func(addr string)) error {
	addr := s.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapServerError(string(s.config.Kind), addr, err)
	}
	if ready != nil {
		ready(ln.Addr().String())
	}

	if s.fiber != nil {
		return s.runFiber(ctx, ln)
	}
	return s.runHTTP(ctx, ln)
}

func (s *Server) runHTTP(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.WrapServerError(string(s.config.Kind), ln.Addr().String(), err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func (s *Server) runFiber(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.fiber.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.WrapServerError(string(s.config.Kind), ln.Addr().String(), err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.fiber.ShutdownWithTimeout(s.config.ShutdownTimeout); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
