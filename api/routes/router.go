package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/graceline/byom-backend/api/controllers"
	"github.com/graceline/byom-backend/api/middleware"
	assetsvc "github.com/graceline/byom-backend/internal/assets"
	cartsvc "github.com/graceline/byom-backend/internal/cart"
	designsvc "github.com/graceline/byom-backend/internal/designs"
	"github.com/graceline/byom-backend/internal/session"
	"github.com/graceline/byom-backend/internal/submission"
	"github.com/graceline/byom-backend/pkg/config"
	"github.com/graceline/byom-backend/pkg/db"
	"github.com/graceline/byom-backend/pkg/logger"
	"github.com/graceline/byom-backend/pkg/metrics"
	"github.com/graceline/byom-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       db.Pinger
	RedisPinger    redis.Pinger
	Registry       *session.Registry
	Handoff        *session.HandoffStore
	Submitter      *submission.Submitter
	AssetService   assetsvc.Service
	DesignService  designsvc.Service
	CartService    cartsvc.Service
	SessionMetrics *metrics.SessionMetrics
	Gatherer       prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger
	sm := deps.SessionMetrics

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/healthz", controllers.HealthLive(cfg))
	r.Get("/readyz", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisPinger))
	r.Get("/ping", controllers.PublicPing())

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionCreate(deps.Registry, sm, logg))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.SessionGet(deps.Registry, logg))
				r.Delete("/", controllers.SessionDelete(deps.Registry, sm, logg))
				r.Patch("/", controllers.SessionUpdate(deps.Registry, sm, logg))

				r.Post("/text", controllers.SessionAddText(deps.Registry, sm, logg))
				r.Post("/stickers", controllers.SessionAddSticker(deps.Registry, sm, logg))
				r.Post("/stickers/scale", controllers.SessionScaleSticker(deps.Registry, sm, logg))
				r.Delete("/layers/{kind}/{layerID}", controllers.SessionRemoveLayer(deps.Registry, sm, logg))

				r.Post("/pointer", controllers.SessionPointer(deps.Registry, sm, logg))
				r.Post("/undo", controllers.SessionUndo(deps.Registry, sm, logg))
				r.Post("/reset", controllers.SessionReset(deps.Registry, sm, logg))

				r.Post("/handoff", controllers.SessionHandoff(deps.Registry, deps.Handoff, logg))

				r.With(middleware.Auth(cfg.JWT, logg)).
					Post("/cart", controllers.SessionAddToCart(deps.Registry, deps.CartService, logg))
				r.With(middleware.Auth(cfg.JWT, logg)).
					Post("/submit", controllers.SessionSubmit(deps.Registry, deps.Submitter, sm, logg))
			})
		})

		r.Get("/preview/{id}", controllers.PreviewGet(deps.Handoff, logg))

		r.Route("/assets", func(r chi.Router) {
			r.With(middleware.OptionalAuth(cfg.JWT, logg)).
				Get("/", controllers.AssetsList(deps.AssetService, logg))
			r.With(middleware.Auth(cfg.JWT, logg)).
				Post("/custom", controllers.AssetsRegisterCustom(deps.AssetService, logg))
		})

		r.Route("/designs", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.DesignsList(deps.DesignService, logg))
			r.Post("/{id}/approval", controllers.DesignSubmitForApproval(deps.DesignService, logg))
		})

		r.With(middleware.Auth(cfg.JWT, logg)).
			Get("/cart", controllers.CartGet(deps.CartService, logg))

		r.With(middleware.Auth(cfg.JWT, logg)).
			Get("/private/ping", controllers.PrivatePing())
	})

	return r
}
