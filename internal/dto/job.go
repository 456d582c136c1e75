package dto

import (
	"time"

	"jobboard/internal/domain"
)

type CreateJobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	ExperienceLevel string   `json:"experienceLevel"`
	SalaryMin       *float64 `json:"salaryMin"`
	SalaryMax       *float64 `json:"salaryMax"`
	CategoryID      *string  `json:"categoryId"`
	TagIDs          []string `json:"tagIds"`
	Deadline        *string  `json:"deadline"` // YYYY-MM-DD
	IsActive        *bool    `json:"isActive"`
}

// UpdateJobRequest: a present tagIds is a full replace of the tag set, not a
// merge. CreatedAt/UpdatedAt never come from the client.
type UpdateJobRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Requirements    *string  `json:"requirements"`
	Location        *string  `json:"location"`
	JobType         *string  `json:"jobType"`
	ExperienceLevel *string  `json:"experienceLevel"`
	SalaryMin       *float64 `json:"salaryMin"`
	SalaryMax       *float64 `json:"salaryMax"`
	CategoryID      *string  `json:"categoryId"`
	TagIDs          []string `json:"tagIds"`
	Deadline        *string  `json:"deadline"`
	IsActive        *bool    `json:"isActive"`
}

type JobResponse struct {
	ID              string            `json:"id"`
	EmployerID      string            `json:"employerId"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Requirements    string            `json:"requirements"`
	Location        string            `json:"location"`
	JobType         string            `json:"jobType"`
	ExperienceLevel string            `json:"experienceLevel"`
	SalaryMin       *float64          `json:"salaryMin"`
	SalaryMax       *float64          `json:"salaryMax"`
	Category        *CategoryResponse `json:"category"`
	Tags            []TagResponse     `json:"tags"`
	Deadline        *string           `json:"deadline"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func JobFromDomain(j *domain.Job) JobResponse {
	resp := JobResponse{
		ID:              j.ID.String(),
		EmployerID:      j.EmployerID.String(),
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Location:        j.Location,
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		IsActive:        j.IsActive,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
		Tags:            make([]TagResponse, 0, len(j.Tags)),
	}
	if j.Category != nil {
		c := CategoryFromDomain(j.Category)
		resp.Category = &c
	}
	for i := range j.Tags {
		resp.Tags = append(resp.Tags, TagFromDomain(&j.Tags[i]))
	}
	if j.Deadline != nil {
		d := j.Deadline.Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}
