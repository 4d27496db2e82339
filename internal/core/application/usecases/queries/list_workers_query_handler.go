package queries

import (
	"context"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListWorkersQueryHandler reads worker accounts straight from the accounts
// table. The password hash column is never selected.
//
// Example:
//
//	handler := NewListWorkersQueryHandler(db)
//	workers, err := handler.Handle(ctx, NewListWorkersQuery())
type ListWorkersQueryHandler struct {
	db *gorm.DB
}

// NewListWorkersQueryHandler creates a handler for worker listings.
func NewListWorkersQueryHandler(db *gorm.DB) ListWorkersQueryHandler {
	return ListWorkersQueryHandler{db: db}
}

// Handle returns workers sorted by full name, then username.
func (h ListWorkersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkersQuery,
) ([]ListWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]ListWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			fullname,
			phone,
			created_at
		FROM accounts
		WHERE role = ?
		ORDER BY fullname, username
	`, int(account.RoleWorker)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var worker ListWorkersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&worker.Username,
			&worker.Email,
			&worker.Fullname,
			&worker.Phone,
			&worker.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		worker.ID = workerID
		workers = append(workers, worker)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
