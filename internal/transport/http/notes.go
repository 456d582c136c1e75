package http

import (
	"net/http"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
)

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.pipeline.ListNotes(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, string(access.ResourceNote), err)
		return
	}
	resp := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, dto.NoteFromDomain(&notes[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	note, err := s.pipeline.CreateNote(r.Context(), actor(r), req)
	if err != nil {
		writeError(w, r, string(access.ResourceNote), err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NoteFromDomain(note))
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	note, err := s.pipeline.GetNote(r.Context(), actor(r), domain.NoteID(id))
	if err != nil {
		writeError(w, r, string(access.ResourceNote), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NoteFromDomain(note))
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	note, err := s.pipeline.UpdateNote(r.Context(), actor(r), domain.NoteID(id), req)
	if err != nil {
		writeError(w, r, string(access.ResourceNote), err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NoteFromDomain(note))
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.pipeline.DeleteNote(r.Context(), actor(r), domain.NoteID(id)); err != nil {
		writeError(w, r, string(access.ResourceNote), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
