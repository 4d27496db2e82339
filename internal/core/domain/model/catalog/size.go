package catalog

import (
	"errors"
	"fmt"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Size struct {
	id    kernel.UUID
	name  string
	bonus decimal.Decimal
}

func NewSize(id kernel.UUID, name string, bonus decimal.Decimal) (Size, error) {
	name = strings.TrimSpace(name)
	var errName, errBonus error
	if name == "" {
		errName = errs.NewValueIsRequiredError("size name")
	}
	if bonus.IsNegative() {
		errBonus = errs.NewValueIsInvalidErrorWithCause("bonusAmount", fmt.Errorf("%s is negative", bonus))
	}
	if err := errors.Join(id.Validate(), errName, errBonus); err != nil {
		return Size{}, err
	}
	return Size{id: id, name: name, bonus: bonus}, nil
}

func (s Size) ID() kernel.UUID { return s.id }

func (s Size) Name() string { return s.name }

func (s Size) Bonus() decimal.Decimal { return s.bonus }
