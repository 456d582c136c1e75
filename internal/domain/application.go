package domain

import "time"

// Application links one applicant to one job. The composite unique index is
// the final arbiter for the one-application-per-pair invariant; the service
// layer's pre-flight check only exists for a clean error message.
type Application struct {
	ID          ApplicationID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	JobID       JobID         `gorm:"type:uuid;uniqueIndex:ux_applications_job_applicant;not null" db:"job_id" json:"jobId"`
	Job         *Job          `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	ApplicantID UserID        `gorm:"type:uuid;uniqueIndex:ux_applications_job_applicant;not null" db:"applicant_id" json:"applicantId"`
	Applicant   *User         `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`

	Resume      string            `gorm:"size:512;not null" db:"resume" json:"resume"`
	CoverLetter string            `gorm:"type:text" db:"cover_letter" json:"coverLetter"`
	Status      ApplicationStatus `gorm:"size:20;not null;default:submitted" db:"status" json:"status"`

	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }

// InterviewSchedule is one-to-one with an application. ScheduledBy is always
// the acting identity, never client input.
type InterviewSchedule struct {
	ID            InterviewID   `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	ApplicationID ApplicationID `gorm:"type:uuid;uniqueIndex:ux_interviews_application;not null" db:"application_id" json:"applicationId"`
	Application   *Application  `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
	ScheduledByID UserID        `gorm:"type:uuid;not null" db:"scheduled_by_id" json:"scheduledById"`
	ScheduledBy   *User         `gorm:"foreignKey:ScheduledByID;constraint:OnDelete:CASCADE" json:"-"`

	Date        time.Time `gorm:"not null" db:"date" json:"date"`
	Location    string    `gorm:"size:255;not null" db:"location" json:"location"`
	MeetingLink string    `gorm:"size:512" db:"meeting_link" json:"meetingLink"`
	Notes       string    `gorm:"type:text" db:"notes" json:"notes"`
}

func (InterviewSchedule) TableName() string { return "interview_schedules" }

// ApplicantNote is an employer-private annotation, many per application,
// ordered newest-first.
type ApplicantNote struct {
	ID            NoteID        `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	ApplicationID ApplicationID `gorm:"type:uuid;index;not null" db:"application_id" json:"applicationId"`
	Application   *Application  `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID      UserID        `gorm:"type:uuid;not null" db:"author_id" json:"authorId"`
	Author        *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	Note      string    `gorm:"type:text;not null" db:"note" json:"note"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (ApplicantNote) TableName() string { return "applicant_notes" }
