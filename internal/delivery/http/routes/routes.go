package routes

import (
	"jobmatcher/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health          *handler.HealthHandler
	Jobs            *handler.JobHandler
	Candidates      *handler.CandidateHandler
	Match           *handler.MatchHandler
	Recommendations *handler.RecommendationHandler
	Parse           *handler.ParseHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	jobs := v1.Group("/jobs")
	candidates := v1.Group("/candidates")
	matching := v1.Group("/matching")
	parse := v1.Group("/parse")

	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(jobs)
	}
	if r.Candidates != nil {
		r.Candidates.RegisterRoutes(candidates)
	}
	if r.Match != nil {
		r.Match.RegisterRoutes(candidates, jobs, matching)
	}
	if r.Recommendations != nil {
		r.Recommendations.RegisterRoutes(candidates)
	}
	if r.Parse != nil {
		r.Parse.RegisterRoutes(parse)
	}
}
