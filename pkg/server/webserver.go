package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/common"
	"github.com/DFE-Digital/fips-v4/pkg/finder"
	"github.com/DFE-Digital/fips-v4/pkg/query"
	"github.com/DFE-Digital/fips-v4/pkg/storage"
	"github.com/DFE-Digital/fips-v4/pkg/tracking"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

const defaultSuggestLimit = 10

type WebServer struct {
	Finder          *finder.Finder
	Cache           *ResponseCache
	Versions        Versioner
	Tracking        tracking.Tracking
	AllowedOrigins  []string
	SuggestLimit    int
	EnableProfiling bool
}

func (ws *WebServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	origins := ws.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         3600,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	if ws.EnableProfiling {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", ws.Products)
		r.Get("/product/{id}", common.JsonHandler(ws.Product))
		r.Get("/product/{id}/categories", common.JsonHandler(ws.Categories))
		r.Get("/groups", common.JsonHandler(ws.Groups))
		r.Get("/groups/{slug}", common.JsonHandler(ws.Group))
		r.Get("/users/suggest", common.JsonHandler(ws.SuggestUsers))
	})
	return r
}

// Products evaluates a listing. Load failures are answered with a degraded
// envelope and status 200.
func (ws *WebServer) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestURI := r.URL.RequestURI()
	sel := query.Parse(r.URL.Query())

	env, cached := ws.cached(ctx, requestURI)
	if !cached {
		env = ws.Finder.EvaluateSelection(ctx, requestURI, sel)
		ws.store(ctx, requestURI, env)
	}
	if ws.Tracking != nil {
		ws.Tracking.TrackSearch(ctx, tracking.NewSearchEvent(r, sel, env))
	}

	if !env.Degraded {
		w.Header().Set("Cache-Control", "public, stale-while-revalidate=120")
	}
	if cached {
		w.Header().Set("X-Cache", "HIT")
	}
	common.WriteJson(w, http.StatusOK, env)
}

func (ws *WebServer) cacheKey(requestURI string) (string, bool) {
	if ws.Cache == nil || ws.Versions == nil {
		return "", false
	}
	version, err := ws.Versions.Version(storage.CatalogFile, storage.TaxonomyFile, storage.UserGroupsFile)
	if err != nil {
		return "", false
	}
	return CacheKey(version, requestURI), true
}

func (ws *WebServer) cached(ctx context.Context, requestURI string) (*types.ResultEnvelope, bool) {
	key, ok := ws.cacheKey(requestURI)
	if !ok {
		return nil, false
	}
	env, ok := ws.Cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	env.RequestId = uuid.New().String()
	return env, true
}

func (ws *WebServer) store(ctx context.Context, requestURI string, env *types.ResultEnvelope) {
	if key, ok := ws.cacheKey(requestURI); ok {
		ws.Cache.Set(ctx, key, env)
	}
}

func (ws *WebServer) Product(r *http.Request) (any, error) {
	id := chi.URLParam(r, "id")
	view, err := ws.Finder.Product(r.Context(), id)
	if err == nil && ws.Tracking != nil && view.Product != nil {
		ws.Tracking.TrackProductView(r.Context(), tracking.NewProductViewEvent(r, id, "detail"))
	}
	return view, err
}

func (ws *WebServer) Categories(r *http.Request) (any, error) {
	id := chi.URLParam(r, "id")
	view, err := ws.Finder.Categories(r.Context(), id)
	if err == nil && ws.Tracking != nil && view.Product != nil {
		ws.Tracking.TrackProductView(r.Context(), tracking.NewProductViewEvent(r, id, "categories"))
	}
	return view, err
}

func (ws *WebServer) Groups(r *http.Request) (any, error) {
	return ws.Finder.Groups(r.Context()), nil
}

func (ws *WebServer) Group(r *http.Request) (any, error) {
	return ws.Finder.Group(r.Context(), chi.URLParam(r, "slug"))
}

func (ws *WebServer) SuggestUsers(r *http.Request) (any, error) {
	limit := ws.SuggestLimit
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return ws.Finder.SuggestUsers(r.Context(), r.URL.Query().Get("q"), limit), nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			logrus.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			}).Debug("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}
