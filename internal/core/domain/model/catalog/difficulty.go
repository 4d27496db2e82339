package catalog

import (
	"errors"
	"fmt"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// BonusTable maps every category type to a bonus amount. Types missing
// from the table pay zero.
type BonusTable map[CategoryType]decimal.Decimal

// For returns the bonus for t, or zero.
func (b BonusTable) For(t CategoryType) decimal.Decimal {
	if v, ok := b[t]; ok {
		return v
	}
	return decimal.Zero
}

// Complete returns a copy with an explicit entry for every category type.
func (b BonusTable) Complete() BonusTable {
	out := make(BonusTable, len(CategoryTypes()))
	for _, t := range CategoryTypes() {
		out[t] = b.For(t)
	}
	return out
}

func (b BonusTable) validate() error {
	for t, v := range b {
		if !t.IsValid() {
			return errs.NewValueIsInvalidErrorWithCause("bonusAmount", fmt.Errorf("unknown category type %q", t))
		}
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("bonusAmount", fmt.Errorf("%s bonus %s is negative", t, v))
		}
	}
	return nil
}

type Difficulty struct {
	id    kernel.UUID
	level int
	name  string
	bonus BonusTable
}

func NewDifficulty(id kernel.UUID, level int, name string, bonus BonusTable) (Difficulty, error) {
	name = strings.TrimSpace(name)
	var errLevel, errName error
	if level < 0 {
		errLevel = errs.NewValueIsOutOfRangeError("level", level, 0, "unbounded")
	}
	if name == "" {
		errName = errs.NewValueIsRequiredError("difficulty name")
	}
	if err := errors.Join(id.Validate(), errLevel, errName, bonus.validate()); err != nil {
		return Difficulty{}, err
	}
	return Difficulty{id: id, level: level, name: name, bonus: bonus.Complete()}, nil
}

func (d Difficulty) ID() kernel.UUID { return d.id }

func (d Difficulty) Level() int { return d.level }

func (d Difficulty) Name() string { return d.name }

func (d Difficulty) Bonus() BonusTable { return d.bonus.Complete() }

// BonusFor is the per-piece bonus this difficulty pays for a category type.
func (d Difficulty) BonusFor(t CategoryType) decimal.Decimal {
	return d.bonus.For(t)
}
