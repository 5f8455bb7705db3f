package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/darkseear/tinylink/internal/config"
	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
	"github.com/darkseear/tinylink/internal/registry"
)

const version = "1.0"

// LinkRegistry - операции реестра ссылок, нужные HTTP API.
type LinkRegistry interface {
	Create(url, code string) (models.LinkView, error)
	List() []models.LinkView
	Get(code string) (models.LinkView, bool)
	Delete(code string) (bool, error)
	IncrementClick(code string)
}

// Router - HTTP маршруты сервиса.
type Router struct {
	Handle *chi.Mux
	Links  LinkRegistry
	Cfg    *config.Config
}

// Routers собирает роутер поверх links.
func Routers(cfg *config.Config, links LinkRegistry) *Router {
	r := Router{
		Handle: chi.NewRouter(),
		Links:  links,
		Cfg:    cfg,
	}

	r.Handle.Use(middleware.Recoverer)
	r.Handle.Use(cors.AllowAll().Handler)
	// на HEAD отвечают GET маршруты
	r.Handle.Use(middleware.GetHead)

	r.Handle.Get("/healthz", r.Health())
	r.Handle.Route("/api/links", func(api chi.Router) {
		api.Post("/", r.CreateLink())
		api.Get("/", r.ListLinks())
		api.Get("/{code}", r.GetLink())
		api.Delete("/{code}", r.DeleteLink())
	})
	r.Handle.Get("/", r.Index())
	r.Handle.Get("/{code}", r.Redirect())

	return &r
}

func readJSON(req *http.Request, v interface{}) error {
	dec := json.NewDecoder(req.Body)
	defer req.Body.Close()
	return dec.Decode(v)
}

func writeJSON(res http.ResponseWriter, status int, v interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(v); err != nil {
		logger.Log.Error("write response error", zap.Error(err))
	}
}

func writeError(res http.ResponseWriter, status int, message string) {
	writeJSON(res, status, models.ErrorJSON{Error: message})
}

// Health - GET /healthz.
func (r *Router) Health() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		writeJSON(res, http.StatusOK, models.HealthJSON{OK: true, Version: version})
	}
}

// CreateLink - POST /api/links.
func (r *Router) CreateLink() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		var body models.CreateRequest
		if err := readJSON(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if body.URL == "" {
			writeError(res, http.StatusBadRequest, "url is required")
			return
		}

		link, err := r.Links.Create(body.URL, body.Code)
		switch {
		case err == nil:
			writeJSON(res, http.StatusCreated, link)
		case errors.Is(err, registry.ErrCodeExists):
			writeError(res, http.StatusConflict, err.Error())
		case errors.Is(err, registry.ErrInvalidURL), errors.Is(err, registry.ErrInvalidCodeFormat):
			writeError(res, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Error("create link error", zap.Error(err))
			writeError(res, http.StatusInternalServerError, "internal error")
		}
	}
}

// ListLinks - GET /api/links.
func (r *Router) ListLinks() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		writeJSON(res, http.StatusOK, r.Links.List())
	}
}

// GetLink - GET /api/links/{code}.
func (r *Router) GetLink() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		link, ok := r.Links.Get(chi.URLParam(req, "code"))
		if !ok {
			writeError(res, http.StatusNotFound, "not found")
			return
		}
		writeJSON(res, http.StatusOK, link)
	}
}

// DeleteLink - DELETE /api/links/{code}.
func (r *Router) DeleteLink() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		deleted, err := r.Links.Delete(chi.URLParam(req, "code"))
		if err != nil {
			logger.Log.Error("delete link error", zap.Error(err))
			writeError(res, http.StatusInternalServerError, "internal error")
			return
		}
		if !deleted {
			writeError(res, http.StatusNotFound, "not found")
			return
		}
		res.WriteHeader(http.StatusNoContent)
	}
}

// Index - GET /, главная страница из каталога статики.
func (r *Router) Index() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		if !r.serveStatic(res, req, "index.html") {
			http.Error(res, "Not found", http.StatusNotFound)
		}
	}
}

// Redirect - GET /{code}. Статический файл важнее кода; найденная ссылка
// засчитывается и по ней выполняется редирект.
func (r *Router) Redirect() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		code := chi.URLParam(req, "code")
		if code == "api" || code == "healthz" {
			http.Error(res, "Not found", http.StatusNotFound)
			return
		}
		if r.serveStatic(res, req, code) {
			return
		}

		link, ok := r.Links.Get(code)
		if !ok {
			http.Error(res, "Not found", http.StatusNotFound)
			return
		}
		r.Links.IncrementClick(code)
		http.Redirect(res, req, link.URL, http.StatusFound)
	}
}

func (r *Router) serveStatic(res http.ResponseWriter, req *http.Request, name string) bool {
	if r.Cfg == nil || r.Cfg.StaticDir == "" {
		return false
	}
	path := filepath.Join(r.Cfg.StaticDir, filepath.Base(name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeFile(res, req, path)
	return true
}
