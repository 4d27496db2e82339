package services

import (
	"sort"

	"embroidery/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

// PreviewItem is one confirmed unpaid return joined to its catalog data.
type PreviewItem struct {
	Quantity   int
	Category   catalog.Category
	Size       *catalog.Size
	Difficulty *catalog.Difficulty
}

type BonusPreview struct {
	Name        string          `json:"name"`
	Quantity    int             `json:"qty"`
	BonusAmount decimal.Decimal `json:"bonusAmount"`
}

type CategoryPreview struct {
	Category     string          `json:"category"`
	Quantity     int             `json:"qty"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Sizes        []BonusPreview  `json:"size"`
	Difficulties []BonusPreview  `json:"difficult"`
}

// PaymentPreviewer builds the payout breakdown the admin edits before saving
// a payment.
type PaymentPreviewer struct{}

func NewPaymentPreviewer() PaymentPreviewer {
	return PaymentPreviewer{}
}

type bonusAcc struct {
	name   string
	qty    int
	amount decimal.Decimal
}

type categoryAcc struct {
	category     catalog.Category
	qty          int
	sizes        map[string]*bonusAcc
	difficulties map[string]*bonusAcc
}

// Preview groups items by category. Categories, sizes and difficulties are
// sorted by name. A difficulty's bonus is the entry of its table for the
// category's type.
func (PaymentPreviewer) Preview(items []PreviewItem) []CategoryPreview {
	groups := make(map[string]*categoryAcc)
	for _, it := range items {
		key := it.Category.ID().String()
		g, ok := groups[key]
		if !ok {
			g = &categoryAcc{
				category:     it.Category,
				sizes:        make(map[string]*bonusAcc),
				difficulties: make(map[string]*bonusAcc),
			}
			groups[key] = g
		}
		g.qty += it.Quantity

		if it.Size != nil {
			accumulate(g.sizes, it.Size.ID().String(), it.Size.Name(), it.Size.Bonus(), it.Quantity)
		}
		if it.Difficulty != nil {
			bonus := it.Difficulty.BonusFor(it.Category.Type())
			accumulate(g.difficulties, it.Difficulty.ID().String(), it.Difficulty.Name(), bonus, it.Quantity)
		}
	}

	out := make([]CategoryPreview, 0, len(groups))
	for _, g := range groups {
		out = append(out, CategoryPreview{
			Category:     g.category.Name(),
			Quantity:     g.qty,
			BasePrice:    g.category.BasePrice(),
			Sizes:        flatten(g.sizes),
			Difficulties: flatten(g.difficulties),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func accumulate(m map[string]*bonusAcc, key, name string, amount decimal.Decimal, qty int) {
	acc, ok := m[key]
	if !ok {
		acc = &bonusAcc{name: name, amount: amount}
		m[key] = acc
	}
	acc.qty += qty
}

func flatten(m map[string]*bonusAcc) []BonusPreview {
	out := make([]BonusPreview, 0, len(m))
	for _, acc := range m {
		out = append(out, BonusPreview{Name: acc.name, Quantity: acc.qty, BonusAmount: acc.amount})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
