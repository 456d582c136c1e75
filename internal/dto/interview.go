package dto

import (
	"time"

	"jobboard/internal/domain"
)

// CreateInterviewRequest: scheduledBy is never client input; the acting
// identity wins unconditionally.
type CreateInterviewRequest struct {
	ApplicationID string    `json:"applicationId"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	MeetingLink   string    `json:"meetingLink"`
	Notes         string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	MeetingLink *string    `json:"meetingLink"`
	Notes       *string    `json:"notes"`
}

type InterviewResponse struct {
	ID                string    `json:"id"`
	ApplicationID     string    `json:"applicationId"`
	ApplicantUsername string    `json:"applicantUsername"`
	JobTitle          string    `json:"jobTitle"`
	ScheduledByID     string    `json:"scheduledById"`
	Date              time.Time `json:"date"`
	Location          string    `json:"location"`
	MeetingLink       string    `json:"meetingLink"`
	Notes             string    `json:"notes"`
}

func InterviewFromDomain(iv *domain.InterviewSchedule) InterviewResponse {
	resp := InterviewResponse{
		ID:            iv.ID.String(),
		ApplicationID: iv.ApplicationID.String(),
		ScheduledByID: iv.ScheduledByID.String(),
		Date:          iv.Date,
		Location:      iv.Location,
		MeetingLink:   iv.MeetingLink,
		Notes:         iv.Notes,
	}
	if iv.Application != nil {
		if iv.Application.Applicant != nil {
			resp.ApplicantUsername = iv.Application.Applicant.Username
		}
		if iv.Application.Job != nil {
			resp.JobTitle = iv.Application.Job.Title
		}
	}
	return resp
}
