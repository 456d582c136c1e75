package http

import (
	"net/http"

	"jobboard/internal/authn"
	"jobboard/internal/domain"
	"jobboard/internal/service"
	"jobboard/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server bundles the resource handlers with their collaborators. One instance
// backs the whole route tree.
type Server struct {
	identity *service.IdentityService
	profiles *service.ProfileService
	catalog  *service.CatalogService
	jobs     *service.JobService
	pipeline *service.PipelineService
	files    *storage.FileStore
	verifier *authn.Verifier
}

type Deps struct {
	Identity *service.IdentityService
	Profiles *service.ProfileService
	Catalog  *service.CatalogService
	Jobs     *service.JobService
	Pipeline *service.PipelineService
	Files    *storage.FileStore
	Verifier *authn.Verifier
}

func NewServer(deps Deps) *Server {
	return &Server{
		identity: deps.Identity,
		profiles: deps.Profiles,
		catalog:  deps.Catalog,
		jobs:     deps.Jobs,
		pipeline: deps.Pipeline,
		files:    deps.Files,
		verifier: deps.Verifier,
	}
}

// actor returns the identity installed by the auth middleware. Routes calling
// it are always registered behind that middleware, so the zero value is only
// reachable through a wiring bug; the services treat it as an anonymous deny.
func actor(r *http.Request) domain.Identity {
	id, _ := authn.IdentityFromContext(r.Context())
	return id
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return uuid.Nil, false
	}
	return id, true
}
