package domain

// Identity is what the authentication boundary hands the core per request:
// the acting account's id, role and staff flag. Nothing else is read.
type Identity struct {
	ID      UserID
	Role    Role
	IsStaff bool
}
