package domain

import "github.com/google/uuid"

type UserID = uuid.UUID
type CategoryID = uuid.UUID
type TagID = uuid.UUID
type CompanyProfileID = uuid.UUID
type JobID = uuid.UUID
type ApplicationID = uuid.UUID
type InterviewID = uuid.UUID
type NoteID = uuid.UUID

// Role is fixed at account creation; no operation changes it afterwards.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleApplicant Role = "applicant"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleApplicant
}

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead:
		return true
	}
	return false
}

// ApplicationStatus has no enforced transition graph: any status may be set
// to any other by an authorized writer.
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "submitted"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusHired     ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusInterview, StatusRejected, StatusHired:
		return true
	}
	return false
}
