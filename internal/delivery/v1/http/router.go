package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/product-table/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/product-table/internal/usecase"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	servertiming "github.com/mitchellh/go-server-timing"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(tableUC usecase.TableUC) {
	r.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(r.logger),
		middleware.Recoverer,
		serverTiming,
	)

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		handler := NewTableHandler(tableUC, r.logger)
		registerTableRoutes(v1, handler)
	})
}

func registerTableRoutes(router chi.Router, h *TableHandler) {
	router.Get("/catalog", h.getCatalog)
	router.Get("/products", h.getProducts)

	router.Route("/sessions", func(s chi.Router) {
		s.Post("/", h.createSession)
		s.Route("/{id}", func(one chi.Router) {
			one.Get("/", h.getSession)
			one.Delete("/", h.deleteSession)
			one.Post("/events", h.applyEvent)
		})
	})
}

// serverTiming добавляет заголовок Server-Timing; метрики в него пишет observability.
func serverTiming(next http.Handler) http.Handler {
	return servertiming.Middleware(next, nil)
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debugf("%s %s %d %dB %s request_id=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
