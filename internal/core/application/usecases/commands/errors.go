package commands

import (
	"errors"
	"fmt"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// ItemProblem points at one offending entry of a batch request.
type ItemProblem struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

func validationError(message string, problems []ItemProblem) error {
	return errs.New(errs.CodeValidation, message).WithDetails(problems)
}

func notFoundError(message string, ids []string) error {
	return errs.New(errs.CodeNotFound, message).WithDetails(map[string]any{"missingIds": ids})
}

func stateConflictError(message string, ids []string) error {
	return errs.New(errs.CodeStateConflict, message).WithDetails(map[string]any{"ids": ids})
}

// guardFailed turns a lost race on a guarded write into a conflict.
func guardFailed(op string, err error) error {
	if errors.Is(err, ports.ErrConcurrentUpdate) {
		return errs.Wrap(errs.CodeConflict, err, fmt.Sprintf("%s conflicted with a concurrent update", op))
	}
	return err
}

// missingIDs lists the requested ids absent from found, in request order.
func missingIDs(requested []kernel.UUID, found map[kernel.UUID]bool) []string {
	var missing []string
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id.String())
		}
	}
	return missing
}

// parseIDs validates raw ids and reports every malformed one.
func parseIDs(field string, raw []string) ([]kernel.UUID, error) {
	parsed, invalid := kernel.ParseUUIDs(raw)
	if len(invalid) == 0 {
		return parsed, nil
	}
	problems := make([]ItemProblem, 0, len(invalid))
	for i, id := range raw {
		for _, bad := range invalid {
			if id == bad {
				problems = append(problems, ItemProblem{Index: i, ID: id, Reason: field + " is not a valid id"})
				break
			}
		}
	}
	return nil, validationError("invalid "+field, problems)
}
