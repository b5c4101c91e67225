package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultPublicPath = "/uploads"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)
	router.Use(middleware.Compress(5, "application/json"))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/users/signup", h.signUp)
	router.Get("/api/users", h.listUsers)

	router.Post("/api/payments/pay", h.pay)
	router.Get("/api/payments", h.listPayments)
	router.Get("/api/payments/phone/{phoneNumber}", h.listPaymentsByPhone)

	publicPath := h.publicPath()
	router.Get(publicPath+"/*", h.serveReceipts(publicPath))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) publicPath() string {
	path := strings.TrimRight(h.files.PublicPath, "/")
	if path == "" {
		return defaultPublicPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return path
}

// serveReceipts serves stored receipt files. Directory listings are not
// exposed.
func (h *Handler) serveReceipts(publicPath string) http.HandlerFunc {
	files := http.StripPrefix(publicPath, http.FileServer(http.Dir(h.files.UploadDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}
