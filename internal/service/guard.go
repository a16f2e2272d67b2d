package service

import (
	"context"

	"notes-be/internal/pkg/apperr"
	"notes-be/internal/repository/unitofwork"
)

// requireOwner gates mutating operations on a fetched resource: the
// resolved caller must be its owning user.
func requireOwner(ownerId, callerId uint) error {
	if ownerId != callerId {
		return apperr.Forbidden("You do not have access to this resource")
	}
	return nil
}

// requireAdmin loads the caller and gates admin-only operations. A token
// whose subject no longer resolves to a user is treated as invalid.
func requireAdmin(ctx context.Context, uow unitofwork.UnitOfWork, callerId uint) error {
	user, err := uow.UserRepository().FindById(ctx, callerId)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.InvalidToken("Invalid token")
	}
	if !user.IsAdmin {
		return apperr.Forbidden("Admin access required")
	}
	return nil
}
