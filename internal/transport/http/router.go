package http

import (
	"net/http"
	"strings"
	"time"

	"jobboard/internal/observability/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the public catalog surface, the authenticated resource
// routes, and the operational endpoints onto one chi router.
func NewRouter(s *Server, corsOrigins string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.WithRequestAndTrace)
	r.Use(middleware.WithMetrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(corsOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Unauthenticated surface: the public job board plus the signup-form
	// email probe and stored media.
	r.Post("/users/check-email", s.checkEmail)
	r.Get("/jobs", s.listJobs)
	r.Get("/jobs/{id}", s.getJob)
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{id}", s.getCategory)
	r.Get("/tags", s.listTags)
	r.Get("/tags/{id}", s.getTag)
	r.Get("/media/*", s.serveMedia)

	r.Group(func(pr chi.Router) {
		pr.Use(s.verifier.Middleware)

		pr.Route("/users", func(pr chi.Router) {
			pr.Get("/", s.listUsers)
			pr.Post("/", s.createUser)
			pr.Get("/me", s.me)
			pr.Get("/{id}", s.getUser)
			pr.Patch("/{id}", s.updateUser)
			pr.Put("/{id}", s.updateUser)
			pr.Delete("/{id}", s.deleteUser)
		})

		pr.Route("/employer-profiles", func(pr chi.Router) {
			pr.Get("/", s.listEmployerProfiles)
			pr.Post("/", s.createEmployerProfile)
			pr.Get("/{id}", s.getEmployerProfile)
			pr.Patch("/{id}", s.updateEmployerProfile)
			pr.Put("/{id}", s.updateEmployerProfile)
			pr.Delete("/{id}", s.deleteEmployerProfile)
		})

		pr.Route("/applicant-profiles", func(pr chi.Router) {
			pr.Get("/", s.listApplicantProfiles)
			pr.Post("/", s.createApplicantProfile)
			pr.Get("/{id}", s.getApplicantProfile)
			pr.Patch("/{id}", s.updateApplicantProfile)
			pr.Put("/{id}", s.updateApplicantProfile)
			pr.Post("/{id}/resume", s.uploadProfileResume)
			pr.Delete("/{id}", s.deleteApplicantProfile)
		})

		pr.Route("/company-profiles", func(pr chi.Router) {
			pr.Get("/", s.listCompanyProfiles)
			pr.Post("/", s.createCompanyProfile)
			pr.Get("/{id}", s.getCompanyProfile)
			pr.Patch("/{id}", s.updateCompanyProfile)
			pr.Put("/{id}", s.updateCompanyProfile)
			pr.Post("/{id}/logo", s.uploadCompanyLogo)
			pr.Delete("/{id}", s.deleteCompanyProfile)
		})

		pr.Post("/categories", s.createCategory)
		pr.Patch("/categories/{id}", s.updateCategory)
		pr.Put("/categories/{id}", s.updateCategory)
		pr.Delete("/categories/{id}", s.deleteCategory)

		pr.Post("/tags", s.createTag)
		pr.Delete("/tags/{id}", s.deleteTag)

		pr.Post("/jobs", s.createJob)
		pr.Patch("/jobs/{id}", s.updateJob)
		pr.Put("/jobs/{id}", s.updateJob)
		pr.Delete("/jobs/{id}", s.deleteJob)

		pr.Route("/applications", func(pr chi.Router) {
			pr.Get("/", s.listApplications)
			pr.Post("/", s.createApplication)
			pr.Get("/{id}", s.getApplication)
			pr.Patch("/{id}", s.updateApplication)
			pr.Put("/{id}", s.updateApplication)
			pr.Delete("/{id}", s.deleteApplication)
		})

		pr.Route("/interviews", func(pr chi.Router) {
			pr.Get("/", s.listInterviews)
			pr.Post("/", s.createInterview)
			pr.Get("/{id}", s.getInterview)
			pr.Patch("/{id}", s.updateInterview)
			pr.Put("/{id}", s.updateInterview)
			pr.Delete("/{id}", s.deleteInterview)
		})

		pr.Route("/notes", func(pr chi.Router) {
			pr.Get("/", s.listNotes)
			pr.Post("/", s.createNote)
			pr.Get("/{id}", s.getNote)
			pr.Patch("/{id}", s.updateNote)
			pr.Put("/{id}", s.updateNote)
			pr.Delete("/{id}", s.deleteNote)
		})
	})

	return r
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
