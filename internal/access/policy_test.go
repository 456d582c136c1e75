package access

import (
	"testing"

	"jobboard/internal/domain"

	"github.com/google/uuid"
)

var (
	staffID     = domain.Identity{ID: uuid.New(), Role: domain.RoleEmployer, IsStaff: true}
	employerID  = domain.Identity{ID: uuid.New(), Role: domain.RoleEmployer}
	applicantID = domain.Identity{ID: uuid.New(), Role: domain.RoleApplicant}
	anonymous   = domain.Identity{}
)

func TestUserResourceDecisions(t *testing.T) {
	if d := Decide(ResourceUser, ActionList, staffID); d != ScopeAll {
		t.Fatalf("staff list users = %v", d)
	}
	if d := Decide(ResourceUser, ActionList, applicantID); d != ScopeOwn {
		t.Fatalf("applicant list users = %v", d)
	}
	if d := Decide(ResourceUser, ActionCreate, employerID); d != Deny {
		t.Fatalf("employer create user = %v", d)
	}
	if d := Decide(ResourceUser, ActionCreate, staffID); d != Allow {
		t.Fatalf("staff create user = %v", d)
	}
}

func TestJobWritesAreRoleGated(t *testing.T) {
	if d := Decide(ResourceJob, ActionList, anonymous); d != Deny {
		t.Fatalf("anonymous identity should deny at the table, got %v", d)
	}
	if d := Decide(ResourceJob, ActionRetrieve, applicantID); d != ScopePublic {
		t.Fatalf("applicant job read = %v", d)
	}
	if d := Decide(ResourceJob, ActionCreate, applicantID); d != Deny {
		t.Fatalf("applicant job create = %v", d)
	}
	if d := Decide(ResourceJob, ActionUpdate, employerID); d != AllowOwn {
		t.Fatalf("employer job update = %v", d)
	}
}

func TestCompanyProfileDeniesWrongRoleReads(t *testing.T) {
	if d := Decide(ResourceCompanyProfile, ActionList, applicantID); d != Deny {
		t.Fatalf("applicant company list = %v", d)
	}
	if d := Decide(ResourceCompanyProfile, ActionList, employerID); d != ScopeOwn {
		t.Fatalf("employer company list = %v", d)
	}
}

// Notes carry no staff entry: a staff flag changes nothing, the role decides.
func TestNoteDecisionsIgnoreStaffFlag(t *testing.T) {
	staffApplicant := domain.Identity{ID: uuid.New(), Role: domain.RoleApplicant, IsStaff: true}
	if d := Decide(ResourceNote, ActionList, staffApplicant); d != ScopeEmpty {
		t.Fatalf("staff-applicant note list = %v", d)
	}
	if d := Decide(ResourceNote, ActionList, staffID); d != ScopeOwn {
		t.Fatalf("staff-employer note list = %v", d)
	}
	if d := Decide(ResourceNote, ActionCreate, applicantID); d != Deny {
		t.Fatalf("applicant note create = %v", d)
	}
}

func TestInterviewOpenToAllRoles(t *testing.T) {
	for _, id := range []domain.Identity{staffID, employerID, applicantID} {
		if d := Decide(ResourceInterview, ActionList, id); d != ScopeAll {
			t.Fatalf("interview list for %v = %v", id.Role, d)
		}
		if d := Decide(ResourceInterview, ActionCreate, id); d != Allow {
			t.Fatalf("interview create for %v = %v", id.Role, d)
		}
	}
}

func TestUnknownResourceDenies(t *testing.T) {
	if d := Decide(Resource("unknown"), ActionList, staffID); d != Deny {
		t.Fatalf("unknown resource = %v", d)
	}
	if d := Decide(ResourceUser, Action("replay"), staffID); d != Deny {
		t.Fatalf("unknown action = %v", d)
	}
}
