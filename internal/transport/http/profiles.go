package http

import (
	"net/http"
	"path/filepath"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/storage"
)

const maxUploadBytes = 10 << 20

func (s *Server) listEmployerProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.ListEmployerProfiles(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceEmployerProfile), err)
		return
	}
	resp := make([]dto.EmployerProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, dto.EmployerProfileFromDomain(&profiles[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createEmployerProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployerProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.profiles.CreateEmployerProfile(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceEmployerProfile), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.EmployerProfileFromDomain(profile))
}

func (s *Server) getEmployerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	profile, err := s.profiles.GetEmployerProfile(r.Context(), actor(r), domain.UserID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceEmployerProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.EmployerProfileFromDomain(profile))
}

func (s *Server) updateEmployerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateEmployerProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.profiles.UpdateEmployerProfile(r.Context(), actor(r), domain.UserID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceEmployerProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.EmployerProfileFromDomain(profile))
}

func (s *Server) deleteEmployerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.profiles.DeleteEmployerProfile(r.Context(), actor(r), domain.UserID(id)); err != nil {
		writeError(w, r, string(access.ResourceEmployerProfile), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listApplicantProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.ListApplicantProfiles(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	resp := make([]dto.ApplicantProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, dto.ApplicantProfileFromDomain(&profiles[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createApplicantProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateApplicantProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.profiles.CreateApplicantProfile(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ApplicantProfileFromDomain(profile))
}

func (s *Server) getApplicantProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	profile, err := s.profiles.GetApplicantProfile(r.Context(), actor(r), domain.UserID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ApplicantProfileFromDomain(profile))
}

func (s *Server) updateApplicantProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateApplicantProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.profiles.UpdateApplicantProfile(r.Context(), actor(r), domain.UserID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ApplicantProfileFromDomain(profile))
}

// uploadProfileResume stores the multipart "file" part and records its
// reference on the profile.
func (s *Server) uploadProfileResume(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ref, ok := s.saveUpload(w, r, storage.PrefixResumes)
	if !ok {
		return
	}
	profile, err := s.profiles.AttachResume(r.Context(), actor(r), domain.UserID(id), ref)
	if err != nil {
		_ = s.files.Remove(ref)
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ApplicantProfileFromDomain(profile))
}

func (s *Server) deleteApplicantProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.profiles.DeleteApplicantProfile(r.Context(), actor(r), domain.UserID(id)); err != nil {
		writeError(w, r, string(access.ResourceApplicantProfile), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// saveUpload pulls the "file" part out of a multipart body and persists it
// under the given prefix, returning the stored reference.
func (s *Server) saveUpload(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "Expected a multipart upload.")
		return "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"file": {"No file was submitted."}})
		return "", false
	}
	defer file.Close()

	ref, err := s.files.Save(prefix, filepath.Base(header.Filename), file)
	if err != nil {
		writeError(w, r, prefix, err)
		return "", false
	}
	return ref, true
}
