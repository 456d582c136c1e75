package http

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/observability/metrics"
)

func (s *Server) listInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.pipeline.ListInterviews(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceInterview), err)
		return
	}
	resp := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		resp = append(resp, dto.InterviewFromDomain(&interviews[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createInterview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInterviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	interview, err := s.pipeline.CreateInterview(r.Context(), actor(r), req)
	if err != nil {
		metrics.InterviewsScheduledTotal.WithLabelValues("rejected").Inc()
		writeError(w, r, string(access.ResourceInterview), err)
		return
	}
	metrics.InterviewsScheduledTotal.WithLabelValues("accepted").Inc()
	writeJSON(w, http.StatusCreated, dto.InterviewFromDomain(interview))
}

func (s *Server) getInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	interview, err := s.pipeline.GetInterview(r.Context(), actor(r), domain.InterviewID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceInterview), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.InterviewFromDomain(interview))
}

func (s *Server) updateInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateInterviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	interview, err := s.pipeline.UpdateInterview(r.Context(), actor(r), domain.InterviewID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceInterview), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.InterviewFromDomain(interview))
}

func (s *Server) deleteInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.pipeline.DeleteInterview(r.Context(), actor(r), domain.InterviewID(id)); err != nil {
		writeError(w, r, string(access.ResourceInterview), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
