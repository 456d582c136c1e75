package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/observability/metrics"
	"jobboard/internal/storage"
)

func (s *Server) listApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.pipeline.ListApplications(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceApplication), err)
		return
	}
	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, dto.ApplicationFromDomain(&apps[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// createApplication accepts either a multipart body carrying the resume file
// alongside jobId/coverLetter fields, or a JSON body referencing an already
// stored resume.
func (s *Server) createApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateApplicationRequest
	var uploadedRef string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeDetail(w, http.StatusBadRequest, "Malformed multipart body.")
			return
		}
		req.JobID = r.FormValue("jobId")
		req.CoverLetter = r.FormValue("coverLetter")
		req.Status = r.FormValue("status")
		file, header, err := r.FormFile("resume")
		if err == nil {
			defer file.Close()
			ref, serr := s.files.Save(storage.PrefixResumes, filepath.Base(header.Filename), file)
			if serr != nil {
				writeError(w, r, string(access.ResourceApplication), serr)
				return
			}
			req.Resume = ref
			uploadedRef = ref
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	app, err := s.pipeline.CreateApplication(r.Context(), actor(r), req)
	if err != nil {
		if uploadedRef != "" {
			_ = s.files.Remove(uploadedRef)
		}
		metrics.ApplicationsSubmittedTotal.WithLabelValues("rejected").Inc()
		writeError(w, r, string(access.ResourceApplication), err)
		return
	}
	metrics.ApplicationsSubmittedTotal.WithLabelValues("accepted").Inc()
	writeJSON(w, http.StatusCreated, dto.ApplicationFromDomain(app))
}

func (s *Server) getApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	app, err := s.pipeline.GetApplication(r.Context(), actor(r), domain.ApplicationID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceApplication), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ApplicationFromDomain(app))
}

func (s *Server) updateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	app, err := s.pipeline.UpdateApplication(r.Context(), actor(r), domain.ApplicationID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceApplication), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ApplicationFromDomain(app))
}

func (s *Server) deleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.pipeline.DeleteApplication(r.Context(), actor(r), domain.ApplicationID(id)); err != nil {
		writeError(w, r, string(access.ResourceApplication), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
