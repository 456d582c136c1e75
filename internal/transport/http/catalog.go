package http

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/storage"
)

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, "category", err)
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.CategoryFromDomain(&categories[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := s.catalog.CreateCategory(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, "category", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	category, err := s.catalog.GetCategory(r.Context(), domain.CategoryID(id))
	if err != nil {
		writeError(w, r, "category", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := s.catalog.UpdateCategory(r.Context(), actor(r), domain.CategoryID(id), req)
	if err != nil {
		writeError(w, r, "category", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteCategory(r.Context(), actor(r), domain.CategoryID(id)); err != nil {
		writeError(w, r, "category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.catalog.ListTags(r.Context())
	if err != nil {
		writeError(w, r, "tag", err)
		return
	}
	resp := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		resp = append(resp, dto.TagFromDomain(&tags[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tag, err := s.catalog.CreateTag(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, "tag", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.TagFromDomain(tag))
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tag, err := s.catalog.GetTag(r.Context(), domain.TagID(id))
	if err != nil {
		writeError(w, r, "tag", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TagFromDomain(tag))
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteTag(r.Context(), actor(r), domain.TagID(id)); err != nil {
		writeError(w, r, "tag", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCompanyProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.catalog.ListCompanyProfiles(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	resp := make([]dto.CompanyProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, dto.CompanyProfileFromDomain(&profiles[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.catalog.CreateCompanyProfile(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CompanyProfileFromDomain(profile))
}

func (s *Server) getCompanyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	profile, err := s.catalog.GetCompanyProfile(r.Context(), actor(r), domain.CompanyProfileID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CompanyProfileFromDomain(profile))
}

func (s *Server) updateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateCompanyProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := s.catalog.UpdateCompanyProfile(r.Context(), actor(r), domain.CompanyProfileID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CompanyProfileFromDomain(profile))
}

func (s *Server) uploadCompanyLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ref, ok := s.saveUpload(w, r, storage.PrefixCompanyLogos)
	if !ok {
		return
	}
	profile, err := s.catalog.AttachLogo(r.Context(), actor(r), domain.CompanyProfileID(id), ref)
	if err != nil {
		_ = s.files.Remove(ref)
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CompanyProfileFromDomain(profile))
}

func (s *Server) deleteCompanyProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteCompanyProfile(r.Context(), actor(r), domain.CompanyProfileID(id)); err != nil {
		writeError(w, r, string(access.ResourceCompanyProfile), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
