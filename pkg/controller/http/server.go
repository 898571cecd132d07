package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/secmon-lab/iris/pkg/domain/interfaces"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	secret string
}

// New builds the webhook intake server. Every POST path is treated as an
// event delivery so the notifier side can use whatever path its pipeline
// template produces.
func New(dispatcher interfaces.Dispatcher, secret string) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		secret: secret,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // header already committed
	})

	// Webhook intake (catch-all, must be last)
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(s.secret))
		r.Post("/*", webhookHandler(dispatcher))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
