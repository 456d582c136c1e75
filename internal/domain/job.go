package domain

import "time"

// Job is a posting owned by exactly one employer. Reads through the public
// surface only ever see rows with IsActive set.
type Job struct {
	ID         JobID  `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	EmployerID UserID `gorm:"type:uuid;index;not null" db:"employer_id" json:"employerId"`
	Employer   *User  `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`

	Title           string          `gorm:"size:255;not null" db:"title" json:"title"`
	Description     string          `gorm:"type:text;not null" db:"description" json:"description"`
	Requirements    string          `gorm:"type:text" db:"requirements" json:"requirements"`
	Location        string          `gorm:"size:255;not null" db:"location" json:"location"`
	JobType         JobType         `gorm:"size:50;not null" db:"job_type" json:"jobType"`
	ExperienceLevel ExperienceLevel `gorm:"size:50;not null" db:"experience_level" json:"experienceLevel"`
	SalaryMin       *float64        `gorm:"type:decimal(10,2)" db:"salary_min" json:"salaryMin"`
	SalaryMax       *float64        `gorm:"type:decimal(10,2)" db:"salary_max" json:"salaryMax"`

	// Category deletion nulls the reference instead of cascading.
	CategoryID *CategoryID `gorm:"type:uuid" db:"category_id" json:"categoryId"`
	Category   *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags       []Tag       `gorm:"many2many:job_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`

	Deadline  *time.Time `gorm:"type:date" db:"deadline" json:"deadline"`
	IsActive  bool       `gorm:"not null;default:true" db:"is_active" json:"isActive"`
	CreatedAt time.Time  `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }
