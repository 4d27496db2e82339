package commands

import (
	"errors"
	"path/filepath"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"

	"github.com/gabriel-vasile/mimetype"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

const pdfMIME = "application/pdf"

// Upload is a product design document sent by the admin.
type Upload struct {
	FileName string
	Content  []byte
}

// checkPDF accepts only documents whose bytes are a PDF, whatever the name says.
func checkPDF(u Upload) (Upload, error) {
	if len(u.Content) == 0 {
		return Upload{}, validationError("file is required", nil)
	}
	if detected := mimetype.Detect(u.Content); !detected.Is(pdfMIME) {
		return Upload{}, validationError("only PDF files are allowed", []ItemProblem{
			{Index: -1, ID: u.FileName, Reason: "detected " + detected.String()},
		})
	}
	name := strings.TrimSuffix(filepath.Base(u.FileName), filepath.Ext(u.FileName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "product"
	}
	u.FileName = name + ".pdf"
	return u, nil
}

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name         string
	code         string
	categoryID   kernel.UUID
	difficultyID *kernel.UUID
	file         Upload

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name, code, categoryID, difficultyID string, file Upload) (CreateProductCommand, error) {
	var problems []ItemProblem
	c := CreateProductCommand{
		name: strings.TrimSpace(name),
		code: strings.TrimSpace(code),
	}
	if c.name == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "name is required"})
	}
	if c.code == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "prodCode is required"})
	}
	cat, err := kernel.UUIDFromString(categoryID)
	if err != nil {
		problems = append(problems, ItemProblem{Index: -1, ID: categoryID, Reason: "categoryId is not a valid id"})
	}
	c.categoryID = cat
	if strings.TrimSpace(difficultyID) != "" {
		diff, err := kernel.UUIDFromString(difficultyID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: -1, ID: difficultyID, Reason: "difficultyId is not a valid id"})
		}
		c.difficultyID = &diff
	}
	if len(problems) > 0 {
		return CreateProductCommand{}, validationError("invalid product", problems)
	}

	if c.file, err = checkPDF(file); err != nil {
		return CreateProductCommand{}, err
	}
	c.guard = guard.NewConstructorGuard()
	return c, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}
