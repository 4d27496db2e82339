package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	ids, err := parseIDs("productId", []string{productID})
	if err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: ids[0], guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
