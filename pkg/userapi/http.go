package userapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

type callerKey struct{}

// Caller is the authenticated user of a request that passed the
// middleware.
func Caller(r *http.Request) *schema.User {
	if u, ok := r.Context().Value(callerKey{}).(*schema.User); ok {
		return u
	}
	return &schema.User{}
}

var public = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

type Http struct {
	service *Service
	listen  string
	server  *http.Server
	router  *mux.Router
}

func NewHttp(service *Service, listen string) *Http {
	return &Http{
		service: service,
		listen:  listen,
	}
}

func BearerToken(r *http.Request) string {
	value := r.Header.Get("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if public[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		user, err := h.service.Authenticate(BearerToken(r))
		if err != nil {
			libol.Debug("Http.Middleware %s: %s", r.URL.Path, err)
			w.Header().Set("WWW-Authenticate", "Bearer")
			ResponseMsg(w, http.StatusUnauthorized, "Authorization Required")
			return
		}
		ctx := context.WithValue(r.Context(), callerKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.Use(h.Middleware)
		User{Service: h.service}.Router(h.router)
	}
	return h.router
}

func (h *Http) Initialize() {
	if h.server == nil {
		h.server = &http.Server{
			Addr:         h.listen,
			Handler:      h.Router(),
			ReadTimeout:  time.Minute,
			WriteTimeout: time.Minute,
		}
	}
}

func (h *Http) Start() {
	h.Initialize()
	libol.Info("Http.Start %s", h.listen)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			libol.Error("Http.Start on %s: %s", h.listen, err)
		}
	}()
}

func (h *Http) Shutdown() {
	if h.server == nil {
		return
	}
	libol.Info("Http.Shutdown %s", h.listen)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		libol.Error("Http.Shutdown: %v", err)
	}
}
