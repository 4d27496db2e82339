// Package catalog holds the reference data products are priced from:
// categories with a base price, sizes with a bonus, difficulties with a
// bonus per category type, and the products themselves.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CategoryType is the closed set of product families. Each category has a
// unique type, and difficulty bonuses are keyed by it.
type CategoryType string

const (
	CategoryTypeApparel  CategoryType = "apparel"
	CategoryTypeHeadwear CategoryType = "headwear"
	CategoryTypeBag      CategoryType = "bag"
	CategoryTypePatch    CategoryType = "patch"
	CategoryTypeOther    CategoryType = "other"
)

// CategoryTypes lists every valid type in a stable order.
func CategoryTypes() []CategoryType {
	return []CategoryType{
		CategoryTypeApparel,
		CategoryTypeHeadwear,
		CategoryTypeBag,
		CategoryTypePatch,
		CategoryTypeOther,
	}
}

func ParseCategoryType(s string) (CategoryType, error) {
	t := CategoryType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errs.NewValueIsInvalidErrorWithCause("category type", fmt.Errorf("unknown type %q", s))
	}
	return t, nil
}

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeApparel, CategoryTypeHeadwear, CategoryTypeBag, CategoryTypePatch, CategoryTypeOther:
		return true
	default:
		return false
	}
}

type Category struct {
	id        kernel.UUID
	name      string
	basePrice decimal.Decimal
	kind      CategoryType
}

func NewCategory(id kernel.UUID, name string, basePrice decimal.Decimal, kind CategoryType) (Category, error) {
	name = strings.TrimSpace(name)
	var errName, errPrice, errKind error
	if name == "" {
		errName = errs.NewValueIsRequiredError("category name")
	}
	if basePrice.IsNegative() {
		errPrice = errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%s is negative", basePrice))
	}
	if !kind.IsValid() {
		errKind = errs.NewValueIsInvalidErrorWithCause("category type", fmt.Errorf("unknown type %q", kind))
	}
	if err := errors.Join(id.Validate(), errName, errPrice, errKind); err != nil {
		return Category{}, err
	}
	return Category{id: id, name: name, basePrice: basePrice, kind: kind}, nil
}

func (c Category) ID() kernel.UUID { return c.id }

func (c Category) Name() string { return c.name }

func (c Category) BasePrice() decimal.Decimal { return c.basePrice }

func (c Category) Type() CategoryType { return c.kind }
