package http

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.ListJobs(r.Context())
	if err != nil {
		writeError(w, r, string(access.ResourceJob), err)
		return
	}
	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, dto.JobFromDomain(&jobs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := s.jobs.CreateJob(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceJob), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.JobFromDomain(job))
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	job, err := s.jobs.GetJob(r.Context(), domain.JobID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceJob), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.JobFromDomain(job))
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := s.jobs.UpdateJob(r.Context(), actor(r), domain.JobID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceJob), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.JobFromDomain(job))
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.jobs.DeleteJob(r.Context(), actor(r), domain.JobID(id)); err != nil {
		writeError(w, r, string(access.ResourceJob), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
