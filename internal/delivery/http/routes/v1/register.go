package v1

import (
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything mounted under /api/v1. Nil handlers are skipped.
type Handlers struct {
	Health         *handler.HealthHandler
	Account        *handler.AccountHandler
	Profile        *handler.ProfileHandler
	Recommendation *handler.RecommendationHandler
	Resume         *handler.ResumeHandler
	Application    *handler.ApplicationHandler
	Catalog        *handler.CatalogHandler
	Chat           *handler.ChatHandler
	WS             *ws.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	accountMw := middleware.NewAccountMiddleware().Middleware()

	if h.Health != nil {
		h.Health.RegisterRoutes(r)
	}
	if h.Account != nil {
		h.Account.RegisterRoutes(r.Group("/accounts"))
	}

	// Per-route middleware: a group-level Use on /accounts/:email would also
	// match /accounts/signup.
	account := r.Group("/accounts/:email")
	if h.Profile != nil {
		h.Profile.RegisterRoutes(account, accountMw)
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(account, accountMw)
	}
	if h.Application != nil {
		h.Application.RegisterRoutes(account, accountMw)
	}

	jobs := r.Group("/jobs")
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(account, accountMw, jobs)
	}
	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(jobs)
	}

	if h.Chat != nil {
		h.Chat.RegisterRoutes(r)
	}
	if h.WS != nil {
		h.WS.RegisterRoutes(r.Group("/ws"))
	}
}
