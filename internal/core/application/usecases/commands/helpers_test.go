package commands_test

import (
	"testing"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, username string, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(kernel.NewUUID(), username, username+"@example.com", "hash", "Full "+username, "0900", role)
	require.NoError(t, err)
	return acc
}

func workerIdentity(acc *account.Account) ports.Identity {
	return ports.Identity{AccountID: acc.ID(), Role: acc.Role(), TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
}

func adminIdentity() ports.Identity {
	return ports.Identity{AccountID: kernel.NewUUID(), Role: account.RoleAdmin, TokenID: "jti"}
}

func newOrder(t *testing.T, po string, productID kernel.UUID, sizeID *kernel.UUID, qty int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), po, productID, sizeID, qty, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	return o
}

func restoreAssignment(t *testing.T, orderID, workerID kernel.UUID, qty, returned, delivered int) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(kernel.NewUUID(), orderID, workerID, qty, returned, delivered, time.Now())
	require.NoError(t, err)
	return a
}

func restoreReturn(t *testing.T, assignmentID kernel.UUID, qty int, confirmed, paid bool) *returns.Return {
	t.Helper()
	r, err := returns.RestoreReturn(kernel.NewUUID(), assignmentID, qty, confirmed, paid, "", time.Now(), time.Now())
	require.NoError(t, err)
	return r
}
