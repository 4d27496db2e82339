package queries

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var (
	ErrListWorkersQueryIsNotConstructed = errors.New(
		"ListWorkersQuery must be created via NewListWorkersQuery constructor",
	)
)

// ListWorkersQuery retrieves every worker account for assignment and
// payment screens. Admin accounts are not listed.
//
// Example:
//
//	query := NewListWorkersQuery()
//	handler := NewListWorkersQueryHandler(db)
//
//	workers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list workers: %w", err)
//	}
//
//	for _, w := range workers {
//	    fmt.Printf("%s (%s)\n", w.Fullname, w.Username)
//	}
type ListWorkersQuery struct {
	guard guard.ConstructorGuard
}

// NewListWorkersQuery creates a parameterless query for all workers.
func NewListWorkersQuery() ListWorkersQuery {
	return ListWorkersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListWorkersQueryIsNotConstructed if validation fails.
func (q ListWorkersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkersQueryIsNotConstructed)
}

// ListWorkersQueryResponse is a worker profile without credentials.
type ListWorkersQueryResponse struct {
	ID        kernel.UUID `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Fullname  string      `json:"fullname"`
	Phone     string      `json:"phone"`
	CreatedAt time.Time   `json:"createdAt"`
}
