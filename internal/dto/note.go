package dto

import (
	"time"

	"jobboard/internal/domain"
)

// CreateNoteRequest: author is always the acting identity.
type CreateNoteRequest struct {
	ApplicationID string `json:"applicationId"`
	Note          string `json:"note"`
}

type UpdateNoteRequest struct {
	Note *string `json:"note"`
}

type NoteResponse struct {
	ID                string    `json:"id"`
	ApplicationID     string    `json:"applicationId"`
	ApplicantUsername string    `json:"applicantUsername"`
	JobTitle          string    `json:"jobTitle"`
	AuthorID          string    `json:"authorId"`
	Note              string    `json:"note"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NoteFromDomain(n *domain.ApplicantNote) NoteResponse {
	resp := NoteResponse{
		ID:            n.ID.String(),
		ApplicationID: n.ApplicationID.String(),
		AuthorID:      n.AuthorID.String(),
		Note:          n.Note,
		CreatedAt:     n.CreatedAt,
	}
	if n.Application != nil {
		if n.Application.Applicant != nil {
			resp.ApplicantUsername = n.Application.Applicant.Username
		}
		if n.Application.Job != nil {
			resp.JobTitle = n.Application.Job.Title
		}
	}
	return resp
}
