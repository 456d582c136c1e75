package dto

import "jobboard/internal/domain"

// Slug is accepted on create only; when absent it is derived from the name.
// Updates never touch it.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func CategoryFromDomain(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID.String(), Name: c.Name, Slug: c.Slug}
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TagFromDomain(t *domain.Tag) TagResponse {
	return TagResponse{ID: t.ID.String(), Name: t.Name}
}

type CreateCompanyProfileRequest struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"companyName"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type CompanyProfileResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func CompanyProfileFromDomain(p *domain.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		CompanyName: p.CompanyName,
		Website:     p.Website,
		Logo:        p.Logo,
		Location:    p.Location,
		Description: p.Description,
	}
}
