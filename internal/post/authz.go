package post

// Decision is the outcome of an author check on edit/delete actions.
type Decision int

const (
	Authorized Decision = iota
	Denied
)

// Authorize compares the resource owner with the acting user. The
// Denied branch is mapped to a redirect, never an error page: the edit
// capability is hidden from non-authors rather than refused.
func Authorize(ownerID, actorID string) Decision {
	if ownerID == actorID {
		return Authorized
	}
	return Denied
}
