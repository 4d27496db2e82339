package commands

import (
	"errors"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ProductPatch holds the optional fields of a product update.
type ProductPatch struct {
	Name         *string
	Code         *string
	CategoryID   *string
	DifficultyID *string
	File         *Upload
}

type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	name         *string
	code         *string
	categoryID   *kernel.UUID
	difficultyID *kernel.UUID
	file         *Upload

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, patch ProductPatch) (UpdateProductCommand, error) {
	ids, err := parseIDs("productId", []string{productID})
	if err != nil {
		return UpdateProductCommand{}, err
	}
	c := UpdateProductCommand{productID: ids[0], name: patch.Name, code: patch.Code}
	if c.code != nil {
		trimmed := strings.TrimSpace(*c.code)
		c.code = &trimmed
	}

	var problems []ItemProblem
	if patch.CategoryID != nil {
		id, err := kernel.UUIDFromString(*patch.CategoryID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: -1, ID: *patch.CategoryID, Reason: "categoryId is not a valid id"})
		}
		c.categoryID = &id
	}
	if patch.DifficultyID != nil {
		id, err := kernel.UUIDFromString(*patch.DifficultyID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: -1, ID: *patch.DifficultyID, Reason: "difficultyId is not a valid id"})
		}
		c.difficultyID = &id
	}
	if len(problems) > 0 {
		return UpdateProductCommand{}, validationError("invalid product", problems)
	}

	if patch.File != nil {
		f, err := checkPDF(*patch.File)
		if err != nil {
			return UpdateProductCommand{}, err
		}
		c.file = &f
	}
	c.guard = guard.NewConstructorGuard()
	return c, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}
