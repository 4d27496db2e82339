package payment

import (
	"fmt"
	"strings"

	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// BonusLine is one size or difficulty row of a category breakdown.
type BonusLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"qty"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryLine is the amount paid for one product category.
type CategoryLine struct {
	Category   string          `json:"category"`
	Quantity   int             `json:"qty"`
	Total      decimal.Decimal `json:"total"`
	Sizes      []BonusLine     `json:"size"`
	Difficults []BonusLine     `json:"difficult"`
}

// Breakdown is the per-category snapshot stored on a payment.
type Breakdown []CategoryLine

// BreakdownError lists every problem found in a breakdown, addressed by
// index (for example "products[1].size[0].qty must be non-negative").
type BreakdownError struct {
	Problems []string
}

func (e *BreakdownError) Error() string {
	return fmt.Sprintf("%s: %s", errs.ErrValueIsInvalid, strings.Join(e.Problems, "; "))
}

func (e *BreakdownError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Normalize trims names and reports every invalid field. An empty
// breakdown is itself a problem.
func (b Breakdown) Normalize() (Breakdown, error) {
	if len(b) == 0 {
		return nil, &BreakdownError{Problems: []string{"products must not be empty"}}
	}

	var problems []string
	out := make(Breakdown, len(b))
	for i, line := range b {
		prefix := fmt.Sprintf("products[%d]", i)
		line.Category = strings.TrimSpace(line.Category)
		if line.Category == "" {
			problems = append(problems, prefix+".category is required")
		}
		problems = append(problems, checkAmounts(prefix, line.Quantity, line.Total)...)

		line.Sizes, problems = normalizeBonus(prefix+".size", line.Sizes, problems)
		line.Difficults, problems = normalizeBonus(prefix+".difficult", line.Difficults, problems)
		out[i] = line
	}

	if len(problems) > 0 {
		return nil, &BreakdownError{Problems: problems}
	}
	return out, nil
}

func normalizeBonus(prefix string, lines []BonusLine, problems []string) ([]BonusLine, []string) {
	out := make([]BonusLine, len(lines))
	for j, l := range lines {
		l.Name = strings.TrimSpace(l.Name)
		problems = append(problems, checkAmounts(fmt.Sprintf("%s[%d]", prefix, j), l.Quantity, l.Total)...)
		out[j] = l
	}
	return out, problems
}

func checkAmounts(prefix string, qty int, total decimal.Decimal) []string {
	var problems []string
	if qty < 0 {
		problems = append(problems, prefix+".qty must be a non-negative number")
	}
	if total.IsNegative() {
		problems = append(problems, prefix+".total must be a non-negative number")
	}
	return problems
}
