package auth

import "github.com/bloghub/microservices/internal/core/domain"

// Authorize decides whether caller may read the user identified by targetID
// or targetEmail. Admins pass unconditionally; everyone else only reaches
// their own record. With neither target given the request is self-access.
// Failure is always domain.ErrForbidden, never a system error.
func Authorize(caller domain.Principal, targetID *int64, targetEmail *string) error {
	if caller.IsAdmin {
		return nil
	}
	if targetID != nil && *targetID != caller.ID {
		return domain.ErrForbidden
	}
	if targetEmail != nil && *targetEmail != caller.Email {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeMutation guards update/delete of an owned resource: allowed iff
// the caller is an admin or owns the resource.
func AuthorizeMutation(callerID int64, isAdmin bool, ownerID int64) error {
	if isAdmin || callerID == ownerID {
		return nil
	}
	return domain.ErrForbidden
}
