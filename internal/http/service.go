package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/duka-labs/inventory-catalog/internal/config"
	"github.com/duka-labs/inventory-catalog/internal/http/apierr"
	"github.com/duka-labs/inventory-catalog/internal/http/metric"
	"github.com/duka-labs/inventory-catalog/internal/http/middleware"
	"github.com/duka-labs/inventory-catalog/internal/http/swagger"
	"github.com/duka-labs/inventory-catalog/internal/service"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	productSvc service.ProductService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(prometheus.DefaultRegisterer),
		productSvc: productSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	productH := newProductHandler(s.productSvc)
	dashboardH := newDashboardHandler(s.productSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", s.handle(dashboardH.home))
		r.Get("/stats", s.handle(dashboardH.getStats))
		r.Get("/activity", s.handle(dashboardH.getActivity))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handle(productH.listProducts))
			r.Post("/", s.handle(productH.createProduct))
			r.Get("/low-stock", s.handle(productH.listLowStockProducts))

			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", s.handle(productH.getProduct))
				r.Put("/", s.handle(productH.updateProduct))
				r.Delete("/", s.handle(productH.deleteProduct))
			})
		})
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is an HTTP handler that reports failures instead of writing
// them, so error rendering stays in one place.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
