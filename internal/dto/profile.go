package dto

import (
	"time"

	"jobboard/internal/domain"
)

type CreateEmployerProfileRequest struct {
	CompanyName        string `json:"companyName"`
	CompanyWebsite     string `json:"companyWebsite"`
	CompanyDescription string `json:"companyDescription"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName        *string `json:"companyName"`
	CompanyWebsite     *string `json:"companyWebsite"`
	CompanyDescription *string `json:"companyDescription"`
}

type EmployerProfileResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	CompanyName        string    `json:"companyName"`
	CompanyWebsite     string    `json:"companyWebsite"`
	CompanyDescription string    `json:"companyDescription"`
	CreatedAt          time.Time `json:"createdAt"`
}

func EmployerProfileFromDomain(p *domain.EmployerProfile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		CompanyName:        p.CompanyName,
		CompanyWebsite:     p.CompanyWebsite,
		CompanyDescription: p.CompanyDescription,
		CreatedAt:          p.CreatedAt,
	}
}

type CreateApplicantProfileRequest struct {
	Bio string `json:"bio"`
}

type UpdateApplicantProfileRequest struct {
	Bio *string `json:"bio"`
}

type ApplicantProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Resume    string    `json:"resume"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
}

func ApplicantProfileFromDomain(p *domain.ApplicantProfile) ApplicantProfileResponse {
	return ApplicantProfileResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Resume:    p.Resume,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}
