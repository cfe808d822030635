package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	appmatch "cricket-live/internal/app/match"
	appscore "cricket-live/internal/app/score"
	"cricket-live/internal/config"
	"cricket-live/internal/livegateway"
	"cricket-live/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, hub *livegateway.Hub) *chi.Mux {
	matchSvc := appmatch.NewService(st, cfg.DefaultTotalOvers)
	scoreSvc := appscore.NewService(st, hub)

	matchHandlers := NewMatchHandlers(matchSvc, hub)
	scoreHandlers := NewScoreHandlers(scoreSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", HealthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandlers.Create())
			r.Get("/", matchHandlers.List())
			r.Route("/{match_id}", func(r chi.Router) {
				r.Get("/", matchHandlers.Detail())
				r.Post("/verify", matchHandlers.Verify())
				r.Delete("/", matchHandlers.Delete())
				r.Get("/events", livegateway.EventsHandler(hub, func(req *http.Request) string {
					return chi.URLParam(req, "match_id")
				}))

				r.Group(func(r chi.Router) {
					r.Use(ScorerAuthMiddleware(st))
					r.Use(BodyCaptureMiddleware(4096))
					r.Post("/score", scoreHandlers.Score())
				})
			})
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
