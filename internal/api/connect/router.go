package connect

import (
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tilawah/internal/app/reader"
	"github.com/osa030/tilawah/internal/gen/tilawah/reader/v1/readerv1connect"
	"github.com/osa030/tilawah/internal/infra/config"
)

// NewRouter builds the HTTP handler serving the reader and admin services.
func NewRouter(m *reader.Manager, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms",
			AdminTokenHeader,
		},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message", "Grpc-Status-Details-Bin"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	readerPath, readerHandler := readerv1connect.NewReaderServiceHandler(NewReaderService(m, cfg))
	adminPath, adminHandler := readerv1connect.NewAdminServiceHandler(
		NewAdminService(m, cfg),
		connect.WithInterceptors(NewAdminAuthInterceptor(cfg)),
	)
	r.Mount(readerPath, readerHandler)
	r.Mount(adminPath, adminHandler)

	return r
}

// requestLogger logs each request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		zlog.Debug().Msgf("http: request: method=%s path=%s status=%d bytes=%d duration=%v request_id=%s",
			r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
