package catalog

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an embroidery design. Image references the uploaded design
// file in the file store.
type Product struct {
	id            kernel.UUID
	name          string
	code          string
	categoryID    kernel.UUID
	difficultyID  *kernel.UUID
	image         string
	createdAt     time.Time
	isConstructed bool
}

func NewProduct(
	id kernel.UUID,
	name, code string,
	categoryID kernel.UUID,
	difficultyID *kernel.UUID,
	image string,
) (*Product, error) {
	p := &Product{isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		p.setName(name),
		p.setCode(code),
		p.setCategoryID(categoryID),
		p.setDifficultyID(difficultyID),
	); err != nil {
		return nil, err
	}
	p.id = id
	p.image = strings.TrimSpace(image)
	return p, nil
}

func RestoreProduct(
	id kernel.UUID,
	name, code string,
	categoryID kernel.UUID,
	difficultyID *kernel.UUID,
	image string,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, code, categoryID, difficultyID, image)
	if err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }

func (p *Product) Name() string { return p.name }

func (p *Product) Code() string { return p.code }

func (p *Product) CategoryID() kernel.UUID { return p.categoryID }

func (p *Product) DifficultyID() *kernel.UUID { return p.difficultyID }

func (p *Product) Image() string { return p.image }

func (p *Product) CreatedAt() time.Time { return p.createdAt }

// ProductChanges carries the optional fields of a product update. Nil
// fields are left unchanged.
type ProductChanges struct {
	Name         *string
	Code         *string
	CategoryID   *kernel.UUID
	DifficultyID *kernel.UUID
	Image        *string
}

// Apply validates and applies changes atomically: on error the product is
// left untouched.
func (p *Product) Apply(c ProductChanges) error {
	next := *p
	var problems []error
	if c.Name != nil {
		problems = append(problems, next.setName(*c.Name))
	}
	if c.Code != nil {
		problems = append(problems, next.setCode(*c.Code))
	}
	if c.CategoryID != nil {
		problems = append(problems, next.setCategoryID(*c.CategoryID))
	}
	if c.DifficultyID != nil {
		problems = append(problems, next.setDifficultyID(c.DifficultyID))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	if c.Image != nil {
		next.image = strings.TrimSpace(*c.Image)
	}
	*p = next
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("prodCode")
	}
	p.code = code
	return nil
}

func (p *Product) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("categoryId", err)
	}
	p.categoryID = id
	return nil
}

func (p *Product) setDifficultyID(id *kernel.UUID) error {
	if id == nil {
		p.difficultyID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("difficultyId", err)
	}
	d := *id
	p.difficultyID = &d
	return nil
}
