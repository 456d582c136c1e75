package service

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/access"
	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

// PipelineService covers applications, interview schedules and applicant
// notes — the part of the system where the per-resource authorization
// asymmetries actually bite.
type PipelineService struct {
	store *store.Store
}

func NewPipelineService(st *store.Store) *PipelineService {
	return &PipelineService{store: st}
}

func (s *PipelineService) ListApplications(ctx context.Context, actor domain.Identity) ([]domain.Application, error) {
	switch access.Decide(access.ResourceApplication, access.ActionList, actor) {
	case access.ScopeAll:
		return s.store.Applications().ListAll(ctx)
	case access.ScopeOwn:
		if actor.Role == domain.RoleEmployer {
			return s.store.Applications().ListForEmployer(ctx, actor.ID)
		}
		return s.store.Applications().ListForApplicant(ctx, actor.ID)
	}
	return nil, domain.ErrPermissionDenied
}

func (s *PipelineService) GetApplication(ctx context.Context, actor domain.Identity, id domain.ApplicationID) (*domain.Application, error) {
	app, err := s.store.Applications().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceApplication, access.ActionRetrieve, actor) {
	case access.ScopeAll:
		return app, nil
	case access.ScopeOwn:
		if s.applicationVisible(app, actor) {
			return app, nil
		}
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrPermissionDenied
}

// applicationVisible is the owner path: employers see applications against
// their jobs, applicants their own submissions.
func (s *PipelineService) applicationVisible(app *domain.Application, actor domain.Identity) bool {
	if actor.Role == domain.RoleEmployer {
		return app.Job != nil && app.Job.EmployerID == actor.ID
	}
	return app.ApplicantID == actor.ID
}

// CreateApplication submits an application. Status is forced to submitted no
// matter what the caller sent, and the applicant is always the acting
// identity. The duplicate pre-flight exists for the clean error; the unique
// index settles races.
func (s *PipelineService) CreateApplication(ctx context.Context, actor domain.Identity, req dto.CreateApplicationRequest) (*domain.Application, error) {
	if access.Decide(access.ResourceApplication, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fieldErr("jobId", "Not a valid job id.", domain.ErrInvalidChoice)
	}
	if _, err := s.store.Jobs().GetByID(ctx, jobID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fieldErr("jobId", "Job does not exist.", domain.ErrInvalidChoice)
		}
		return nil, err
	}
	if req.Resume == "" {
		return nil, fieldErr("resume", "Resume must be provided.", domain.ErrMissingField)
	}

	exists, err := s.store.Applications().ExistsForJobAndApplicant(ctx, jobID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	now := time.Now().UTC()
	app := &domain.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: actor.ID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      domain.StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Applications().Create(ctx, app); err != nil {
		return nil, err
	}
	return s.store.Applications().GetByID(ctx, app.ID)
}

// UpdateApplication: cover letter edits follow the owner path. Status is
// writable only by staff or the employer owning the job; applicant-supplied
// status is dropped silently, matching its read-only treatment at create.
func (s *PipelineService) UpdateApplication(ctx context.Context, actor domain.Identity, id domain.ApplicationID, req dto.UpdateApplicationRequest) (*domain.Application, error) {
	app, err := s.getMutableApplication(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.CoverLetter != nil {
		app.CoverLetter = *req.CoverLetter
	}
	if req.Status != nil && s.mayChangeStatus(app, actor) {
		status := domain.ApplicationStatus(*req.Status)
		if !status.Valid() {
			return nil, fieldErr("status", "Not a valid status.", domain.ErrInvalidChoice)
		}
		// No transition graph: any status may follow any other.
		app.Status = status
	}
	app.UpdatedAt = time.Now().UTC()

	if err := s.store.Applications().Update(ctx, app); err != nil {
		return nil, err
	}
	return s.store.Applications().GetByID(ctx, app.ID)
}

func (s *PipelineService) mayChangeStatus(app *domain.Application, actor domain.Identity) bool {
	if actor.IsStaff {
		return true
	}
	return actor.Role == domain.RoleEmployer && app.Job != nil && app.Job.EmployerID == actor.ID
}

func (s *PipelineService) DeleteApplication(ctx context.Context, actor domain.Identity, id domain.ApplicationID) error {
	if _, err := s.getMutableApplication(ctx, actor, id); err != nil {
		return err
	}
	return s.store.Applications().Delete(ctx, id)
}

func (s *PipelineService) getMutableApplication(ctx context.Context, actor domain.Identity, id domain.ApplicationID) (*domain.Application, error) {
	app, err := s.store.Applications().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.Decide(access.ResourceApplication, access.ActionUpdate, actor) {
	case access.Allow:
		return app, nil
	case access.AllowOwn:
		if s.applicationVisible(app, actor) {
			return app, nil
		}
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrPermissionDenied
}

// ListInterviews is visible to every authenticated identity. A known gap,
// preserved deliberately rather than fixed in passing.
func (s *PipelineService) ListInterviews(ctx context.Context, actor domain.Identity) ([]domain.InterviewSchedule, error) {
	if access.Decide(access.ResourceInterview, access.ActionList, actor) != access.ScopeAll {
		return nil, domain.ErrPermissionDenied
	}
	return s.store.Interviews().List(ctx)
}

func (s *PipelineService) GetInterview(ctx context.Context, actor domain.Identity, id domain.InterviewID) (*domain.InterviewSchedule, error) {
	if access.Decide(access.ResourceInterview, access.ActionRetrieve, actor) != access.ScopeAll {
		return nil, domain.ErrPermissionDenied
	}
	return s.store.Interviews().GetByID(ctx, id)
}

// CreateInterview schedules the single interview an application may have.
// ScheduledBy is always the acting identity, and that identity must be the
// employer who owns the application's job.
func (s *PipelineService) CreateInterview(ctx context.Context, actor domain.Identity, req dto.CreateInterviewRequest) (*domain.InterviewSchedule, error) {
	if access.Decide(access.ResourceInterview, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, fieldErr("applicationId", "Not a valid application id.", domain.ErrInvalidChoice)
	}
	app, err := s.store.Applications().GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fieldErr("applicationId", "Application does not exist.", domain.ErrInvalidChoice)
		}
		return nil, err
	}
	if app.Job == nil || app.Job.EmployerID != actor.ID {
		return nil, domain.ErrPermissionDenied
	}
	if req.Date.IsZero() {
		return nil, fieldErr("date", "Date must be provided.", domain.ErrMissingField)
	}
	if req.Location == "" {
		return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
	}

	exists, err := s.store.Interviews().ExistsForApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrInterviewExists
	}

	iv := &domain.InterviewSchedule{
		ID:            uuid.New(),
		ApplicationID: appID,
		ScheduledByID: actor.ID,
		Date:          req.Date,
		Location:      req.Location,
		MeetingLink:   req.MeetingLink,
		Notes:         req.Notes,
	}
	if err := s.store.Interviews().Create(ctx, iv); err != nil {
		return nil, err
	}
	return s.store.Interviews().GetByID(ctx, iv.ID)
}

func (s *PipelineService) UpdateInterview(ctx context.Context, actor domain.Identity, id domain.InterviewID, req dto.UpdateInterviewRequest) (*domain.InterviewSchedule, error) {
	if access.Decide(access.ResourceInterview, access.ActionUpdate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	iv, err := s.store.Interviews().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		iv.Date = *req.Date
	}
	if req.Location != nil {
		if *req.Location == "" {
			return nil, fieldErr("location", "Location must be provided.", domain.ErrMissingField)
		}
		iv.Location = *req.Location
	}
	if req.MeetingLink != nil {
		iv.MeetingLink = *req.MeetingLink
	}
	if req.Notes != nil {
		iv.Notes = *req.Notes
	}
	if err := s.store.Interviews().Update(ctx, iv); err != nil {
		return nil, err
	}
	return s.store.Interviews().GetByID(ctx, id)
}

func (s *PipelineService) DeleteInterview(ctx context.Context, actor domain.Identity, id domain.InterviewID) error {
	if access.Decide(access.ResourceInterview, access.ActionDelete, actor).Denied() {
		return domain.ErrPermissionDenied
	}
	return s.store.Interviews().Delete(ctx, id)
}

// ListNotes: employers see notes on their own jobs' applications; everyone
// else gets a successful empty list, never a 403.
func (s *PipelineService) ListNotes(ctx context.Context, actor domain.Identity) ([]domain.ApplicantNote, error) {
	switch access.Decide(access.ResourceNote, access.ActionList, actor) {
	case access.ScopeOwn:
		return s.store.Notes().ListForEmployer(ctx, actor.ID)
	case access.ScopeEmpty:
		return []domain.ApplicantNote{}, nil
	}
	return nil, domain.ErrPermissionDenied
}

func (s *PipelineService) GetNote(ctx context.Context, actor domain.Identity, id domain.NoteID) (*domain.ApplicantNote, error) {
	switch access.Decide(access.ResourceNote, access.ActionRetrieve, actor) {
	case access.ScopeOwn:
		note, err := s.store.Notes().GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if note.Application == nil || note.Application.Job == nil || note.Application.Job.EmployerID != actor.ID {
			return nil, domain.ErrNotFound
		}
		return note, nil
	case access.ScopeEmpty:
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrPermissionDenied
}

// CreateNote: author is the acting identity, which must be an employer
// owning the application's job.
func (s *PipelineService) CreateNote(ctx context.Context, actor domain.Identity, req dto.CreateNoteRequest) (*domain.ApplicantNote, error) {
	if access.Decide(access.ResourceNote, access.ActionCreate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, fieldErr("applicationId", "Not a valid application id.", domain.ErrInvalidChoice)
	}
	app, err := s.store.Applications().GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fieldErr("applicationId", "Application does not exist.", domain.ErrInvalidChoice)
		}
		return nil, err
	}
	if app.Job == nil || app.Job.EmployerID != actor.ID {
		return nil, domain.ErrPermissionDenied
	}
	if req.Note == "" {
		return nil, fieldErr("note", "Note must be provided.", domain.ErrMissingField)
	}

	note := &domain.ApplicantNote{
		ID:            uuid.New(),
		ApplicationID: appID,
		AuthorID:      actor.ID,
		Note:          req.Note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Notes().Create(ctx, note); err != nil {
		return nil, err
	}
	return s.store.Notes().GetByID(ctx, note.ID)
}

// UpdateNote and DeleteNote gate on role only; note ownership is not
// re-checked beyond it. Preserved as documented behavior.
func (s *PipelineService) UpdateNote(ctx context.Context, actor domain.Identity, id domain.NoteID, req dto.UpdateNoteRequest) (*domain.ApplicantNote, error) {
	if access.Decide(access.ResourceNote, access.ActionUpdate, actor).Denied() {
		return nil, domain.ErrPermissionDenied
	}
	note, err := s.store.Notes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Note != nil {
		if *req.Note == "" {
			return nil, fieldErr("note", "Note must be provided.", domain.ErrMissingField)
		}
		note.Note = *req.Note
	}
	if err := s.store.Notes().Update(ctx, note); err != nil {
		return nil, err
	}
	return s.store.Notes().GetByID(ctx, id)
}

func (s *PipelineService) DeleteNote(ctx context.Context, actor domain.Identity, id domain.NoteID) error {
	if access.Decide(access.ResourceNote, access.ActionDelete, actor).Denied() {
		return domain.ErrPermissionDenied
	}
	return s.store.Notes().Delete(ctx, id)
}
