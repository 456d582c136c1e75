package dto

import (
	"time"

	"jobboard/internal/domain"
)

// CreateApplicationRequest: Status is accepted in input but read-only; the
// stored row always starts as submitted. Resume is the stored-file reference
// produced by the upload handling in the transport layer.
type CreateApplicationRequest struct {
	JobID       string `json:"jobId"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"coverLetter"`
	Status      string `json:"status"`
}

type UpdateApplicationRequest struct {
	Status      *string `json:"status"`
	CoverLetter *string `json:"coverLetter"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	ApplicantID string    `json:"applicantId"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"coverLetter"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ApplicationFromDomain(a *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		ApplicantID: a.ApplicantID.String(),
		Resume:      a.Resume,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Job != nil {
		resp.JobTitle = a.Job.Title
	}
	return resp
}
