package http

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.identity.ListUsers(r.Context(), actor(r), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.UserFromDomain(&users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := s.identity.CreateUser(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := s.identity.GetUser(r.Context(), actor(r), domain.UserID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	user, err := s.identity.Me(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := s.identity.UpdateUser(r.Context(), actor(r), domain.UserID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.identity.DeleteUser(r.Context(), actor(r), domain.UserID(id)); err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkEmail is unauthenticated so signup forms can probe before an account
// exists.
func (s *Server) checkEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	exists, err := s.identity.CheckEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, string(access.ResourceUser), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CheckEmailResponse{Exists: exists})
}
