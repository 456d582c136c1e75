package domain

import "errors"

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrFieldTooLong     = errors.New("field too long")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")

	// Pre-flight duplicate detections, distinct from the storage-level
	// unique-constraint violation that backstops them under races.
	ErrDuplicateEmail          = errors.New("a user with this email already exists")
	ErrDuplicateCategory       = errors.New("a category with this name or slug already exists")
	ErrDuplicateTag            = errors.New("a tag with this name already exists")
	ErrDuplicateProfile        = errors.New("a profile already exists for this user")
	ErrDuplicateCompanyProfile = errors.New("you already have a company profile")
	ErrAlreadyApplied          = errors.New("you have already applied for this job")
	ErrInterviewExists         = errors.New("this application already has an interview scheduled")
)
