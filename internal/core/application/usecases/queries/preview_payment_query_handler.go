package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/services"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/pagination"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PreviewPaymentQueryHandler struct {
	db        *gorm.DB
	previewer services.PaymentPreviewer
}

func NewPreviewPaymentQueryHandler(db *gorm.DB) PreviewPaymentQueryHandler {
	return PreviewPaymentQueryHandler{db: db, previewer: services.NewPaymentPreviewer()}
}

type workerRow struct {
	ID       uuid.UUID
	Username string
	Fullname string
}

type payableRow struct {
	ID              uuid.UUID
	ProductName     string
	Quantity        int
	UpdatedAt       time.Time
	CategoryID      uuid.UUID
	CategoryName    string
	BasePrice       decimal.Decimal
	CategoryType    string
	SizeID          *uuid.UUID
	SizeName        *string
	SizeBonus       decimal.NullDecimal
	DifficultyID    *uuid.UUID
	DifficultyLevel *int
	DifficultyName  *string
	DifficultyBonus datatypes.JSON
}

func (h PreviewPaymentQueryHandler) Handle(
	ctx context.Context,
	query PreviewPaymentQuery,
) (PreviewPaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewPaymentResponse{}, err
	}

	worker, err := h.worker(ctx, query.workerID)
	if err != nil {
		return PreviewPaymentResponse{}, err
	}

	stmt := psql.
		Select(
			"r.id", "p.name AS product_name", "r.quantity", "r.updated_at",
			"c.id AS category_id", "c.name AS category_name", "c.base_price", "c.type AS category_type",
			"s.id AS size_id", "s.name AS size_name", "s.bonus_amount AS size_bonus",
			"d.id AS difficulty_id", "d.level AS difficulty_level", "d.name AS difficulty_name",
			"d.bonus AS difficulty_bonus",
		).
		From("returns r").
		Join("assignments a ON a.id = r.assignment_id").
		Join("orders o ON o.id = a.order_id").
		Join("products p ON p.id = o.product_id").
		Join("categories c ON c.id = p.category_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		LeftJoin("difficulties d ON d.id = p.difficulty_id").
		Where(sq.Eq{"a.worker_id": query.workerID.Bytes(), "r.confirmed": true, "r.paid": false}).
		OrderBy("r.updated_at DESC", "r.id ASC")

	var rows []payableRow
	if err = fetch(ctx, h.db, stmt, &rows); err != nil {
		return PreviewPaymentResponse{}, err
	}

	items := make([]PayableReturn, 0, len(rows))
	returnIDs := make([]kernel.UUID, 0, len(rows))
	previewItems := make([]services.PreviewItem, 0, len(rows))
	for _, r := range rows {
		id, idErr := toID(r.ID)
		if idErr != nil {
			return PreviewPaymentResponse{}, idErr
		}
		item, itemErr := r.previewItem()
		if itemErr != nil {
			return PreviewPaymentResponse{}, fmt.Errorf("return %s: %w", id, itemErr)
		}
		items = append(items, PayableReturn{
			ReturnID:    id,
			ProductName: r.ProductName,
			SizeName:    deref(r.SizeName),
			Quantity:    r.Quantity,
			UpdatedAt:   r.UpdatedAt,
		})
		returnIDs = append(returnIDs, id)
		previewItems = append(previewItems, item)
	}

	return PreviewPaymentResponse{
		Worker:     worker,
		Items:      pagination.Slice(items, query.page),
		Preview:    h.previewer.Preview(previewItems),
		ReturnIDs:  returnIDs,
		Pagination: query.page.Info(int64(len(items))),
	}, nil
}

func (h PreviewPaymentQueryHandler) worker(ctx context.Context, id kernel.UUID) (PaymentWorker, error) {
	stmt := psql.Select("id", "username", "fullname").
		From("accounts").
		Where(sq.Eq{"id": id.Bytes(), "role": int(account.RoleWorker)})

	var rows []workerRow
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return PaymentWorker{}, err
	}
	if len(rows) == 0 {
		return PaymentWorker{}, errs.NewObjectNotFoundError("workerId", id)
	}
	return PaymentWorker{ID: id, Username: rows[0].Username, Fullname: rows[0].Fullname}, nil
}

func (r payableRow) previewItem() (services.PreviewItem, error) {
	categoryID, err := toID(r.CategoryID)
	if err != nil {
		return services.PreviewItem{}, err
	}
	category, err := catalog.NewCategory(categoryID, r.CategoryName, r.BasePrice, catalog.CategoryType(r.CategoryType))
	if err != nil {
		return services.PreviewItem{}, err
	}
	item := services.PreviewItem{Quantity: r.Quantity, Category: category}

	if r.SizeID != nil {
		sizeID, idErr := toID(*r.SizeID)
		if idErr != nil {
			return services.PreviewItem{}, idErr
		}
		size, sizeErr := catalog.NewSize(sizeID, deref(r.SizeName), r.SizeBonus.Decimal)
		if sizeErr != nil {
			return services.PreviewItem{}, sizeErr
		}
		item.Size = &size
	}

	if r.DifficultyID != nil {
		difficultyID, idErr := toID(*r.DifficultyID)
		if idErr != nil {
			return services.PreviewItem{}, idErr
		}
		var bonus catalog.BonusTable
		if err = json.Unmarshal(r.DifficultyBonus, &bonus); err != nil {
			return services.PreviewItem{}, fmt.Errorf("difficulty bonus: %w", err)
		}
		level := 0
		if r.DifficultyLevel != nil {
			level = *r.DifficultyLevel
		}
		difficulty, diffErr := catalog.NewDifficulty(difficultyID, level, deref(r.DifficultyName), bonus)
		if diffErr != nil {
			return services.PreviewItem{}, diffErr
		}
		item.Difficulty = &difficulty
	}
	return item, nil
}
