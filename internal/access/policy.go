// Package access holds the per-resource, per-action, per-role capability
// table. Whether a wrong-role actor gets a 403 or a silently filtered result
// differs by resource on purpose; the table makes that asymmetry data rather
// than scattered branches.
package access

import "jobboard/internal/domain"

type Resource string

const (
	ResourceUser             Resource = "user"
	ResourceEmployerProfile  Resource = "employer_profile"
	ResourceApplicantProfile Resource = "applicant_profile"
	ResourceCompanyProfile   Resource = "company_profile"
	ResourceJob              Resource = "job"
	ResourceApplication      Resource = "application"
	ResourceInterview        Resource = "interview"
	ResourceNote             Resource = "note"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Decision is the outcome of a table lookup. Read actions resolve to a
// scope; write actions resolve to a gate. Deny always means HTTP 403,
// ScopeEmpty means a successful empty result, and ScopeOwn turns non-owned
// targets into 404s.
type Decision int

const (
	Deny Decision = iota
	Allow
	AllowOwn
	ScopeAll
	ScopeOwn
	ScopePublic
	ScopeEmpty
)

func (d Decision) Denied() bool { return d == Deny }

type subject int

const (
	subjStaff subject = iota
	subjEmployer
	subjApplicant
)

type ruleSet map[Action]map[subject]Decision

// rules is the table from the authorization contract, verbatim. A missing
// entry denies.
var rules = map[Resource]ruleSet{
	ResourceUser: {
		ActionList:     {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionRetrieve: {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionCreate:   {subjStaff: Allow},
		ActionUpdate:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
		ActionDelete:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
	},
	ResourceEmployerProfile: {
		ActionList:     {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionRetrieve: {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionCreate:   {subjEmployer: Allow},
		ActionUpdate:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
		ActionDelete:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
	},
	ResourceApplicantProfile: {
		ActionList:     {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionRetrieve: {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionCreate:   {subjApplicant: Allow},
		ActionUpdate:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
		ActionDelete:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
	},
	// CompanyProfile rejects wrong-role actors outright, reads included.
	ResourceCompanyProfile: {
		ActionList:     {subjEmployer: ScopeOwn},
		ActionRetrieve: {subjEmployer: ScopeOwn},
		ActionCreate:   {subjEmployer: Allow},
		ActionUpdate:   {subjEmployer: AllowOwn},
		ActionDelete:   {subjEmployer: AllowOwn},
	},
	// Job reads are public (active rows only); writes are employer-scoped
	// and wrong-role writers get 403, not a filtered 404.
	ResourceJob: {
		ActionList:     {subjStaff: ScopePublic, subjEmployer: ScopePublic, subjApplicant: ScopePublic},
		ActionRetrieve: {subjStaff: ScopePublic, subjEmployer: ScopePublic, subjApplicant: ScopePublic},
		ActionCreate:   {subjEmployer: Allow},
		ActionUpdate:   {subjEmployer: AllowOwn},
		ActionDelete:   {subjEmployer: AllowOwn},
	},
	ResourceApplication: {
		ActionList:     {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionRetrieve: {subjStaff: ScopeAll, subjEmployer: ScopeOwn, subjApplicant: ScopeOwn},
		ActionCreate:   {subjApplicant: Allow},
		ActionUpdate:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
		ActionDelete:   {subjStaff: Allow, subjEmployer: AllowOwn, subjApplicant: AllowOwn},
	},
	// Interviews are visible to any authenticated identity and writes carry
	// no view-layer role gate; the scheduled_by ownership check lives in the
	// pipeline service. Known gap, preserved deliberately.
	ResourceInterview: {
		ActionList:     {subjStaff: ScopeAll, subjEmployer: ScopeAll, subjApplicant: ScopeAll},
		ActionRetrieve: {subjStaff: ScopeAll, subjEmployer: ScopeAll, subjApplicant: ScopeAll},
		ActionCreate:   {subjStaff: Allow, subjEmployer: Allow, subjApplicant: Allow},
		ActionUpdate:   {subjStaff: Allow, subjEmployer: Allow, subjApplicant: Allow},
		ActionDelete:   {subjStaff: Allow, subjEmployer: Allow, subjApplicant: Allow},
	},
	// Notes: non-employers read an empty set (never 403) but cannot write.
	// Staff carries no special treatment here; the role decides.
	ResourceNote: {
		ActionList:     {subjEmployer: ScopeOwn, subjApplicant: ScopeEmpty},
		ActionRetrieve: {subjEmployer: ScopeOwn, subjApplicant: ScopeEmpty},
		ActionCreate:   {subjEmployer: Allow},
		ActionUpdate:   {subjEmployer: Allow},
		ActionDelete:   {subjEmployer: Allow},
	},
}

// Decide resolves the capability for an identity. Staff entries take
// precedence where the table defines them; otherwise the identity is judged
// by its role alone.
func Decide(res Resource, action Action, id domain.Identity) Decision {
	actions, ok := rules[res]
	if !ok {
		return Deny
	}
	subjects, ok := actions[action]
	if !ok {
		return Deny
	}
	if id.IsStaff {
		if d, ok := subjects[subjStaff]; ok {
			return d
		}
	}
	var subj subject
	switch id.Role {
	case domain.RoleEmployer:
		subj = subjEmployer
	case domain.RoleApplicant:
		subj = subjApplicant
	default:
		return Deny
	}
	d, ok := subjects[subj]
	if !ok {
		return Deny
	}
	return d
}
