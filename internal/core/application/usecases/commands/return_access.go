package commands

import (
	"context"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// loadAssignments fetches every id and fails with the complete list of
// missing ones.
func loadAssignments(
	ctx context.Context,
	repo ports.AssignmentRepository,
	ids []kernel.UUID,
) (map[kernel.UUID]*assignment.Assignment, error) {
	found, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]*assignment.Assignment, len(found))
	present := make(map[kernel.UUID]bool, len(found))
	for _, a := range found {
		byID[a.ID()] = a
		present[a.ID()] = true
	}
	if missing := missingIDs(ids, present); len(missing) > 0 {
		return nil, notFoundError("assignments not found", missing)
	}
	return byID, nil
}

func loadReturns(
	ctx context.Context,
	repo ports.ReturnRepository,
	ids []kernel.UUID,
) (map[kernel.UUID]*returns.Return, error) {
	found, err := repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]*returns.Return, len(found))
	present := make(map[kernel.UUID]bool, len(found))
	for _, r := range found {
		byID[r.ID()] = r
		present[r.ID()] = true
	}
	if missing := missingIDs(ids, present); len(missing) > 0 {
		return nil, notFoundError("returns not found", missing)
	}
	return byID, nil
}

// ensureOwned rejects workers touching assignments of other workers. Admins
// may act on any assignment.
func ensureOwned(actor ports.Identity, ids []kernel.UUID, assignments map[kernel.UUID]*assignment.Assignment) error {
	if actor.Role == account.RoleAdmin {
		return nil
	}
	var foreign []string
	for _, id := range ids {
		if a, ok := assignments[id]; ok && !a.BelongsTo(actor.AccountID) {
			foreign = append(foreign, id.String())
		}
	}
	if len(foreign) > 0 {
		return errs.New(errs.CodeForbidden, "assignments belong to another worker").
			WithDetails(map[string]any{"ids": foreign})
	}
	return nil
}

// ensureReturnsOwned resolves the assignments behind rs and applies
// ensureOwned to them.
func ensureReturnsOwned(
	ctx context.Context,
	actor ports.Identity,
	repo ports.AssignmentRepository,
	rs map[kernel.UUID]*returns.Return,
) error {
	if actor.Role == account.RoleAdmin {
		return nil
	}
	ids := make([]kernel.UUID, 0, len(rs))
	seen := make(map[kernel.UUID]bool, len(rs))
	for _, r := range rs {
		if !seen[r.AssignmentID()] {
			seen[r.AssignmentID()] = true
			ids = append(ids, r.AssignmentID())
		}
	}
	assignments, err := loadAssignments(ctx, repo, ids)
	if err != nil {
		return err
	}
	if err := ensureOwned(actor, ids, assignments); err != nil {
		return errs.New(errs.CodeForbidden, "returns belong to another worker")
	}
	return nil
}

// rejectConfirmed fails when any of ids refers to a confirmed return.
func rejectConfirmed(ids []kernel.UUID, rs map[kernel.UUID]*returns.Return) error {
	var confirmed []string
	for _, id := range ids {
		if rs[id].IsConfirmed() {
			confirmed = append(confirmed, id.String())
		}
	}
	if len(confirmed) > 0 {
		return stateConflictError("returns are already confirmed", confirmed)
	}
	return nil
}
