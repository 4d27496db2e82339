// Package queries holds the read side: list, preview and report handlers
// that select straight from the database into response structs.
//
// Statements are built with squirrel using ? placeholders and executed
// through gorm's Raw, which rewrites the placeholders for the dialect.
package queries

import (
	"context"
	"fmt"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/pagination"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// fetch runs b and scans the result into dest.
func fetch(ctx context.Context, db *gorm.DB, b sq.Sqlizer, dest any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return db.WithContext(ctx).Raw(query, args...).Scan(dest).Error
}

// count runs base with COUNT(*) as its only column.
func count(ctx context.Context, db *gorm.DB, base sq.SelectBuilder) (int64, error) {
	var total int64
	if err := fetch(ctx, db, base.Columns("COUNT(*)"), &total); err != nil {
		return 0, err
	}
	return total, nil
}

// window applies LIMIT/OFFSET for p.
func window(b sq.SelectBuilder, p pagination.Params) sq.SelectBuilder {
	return b.Limit(uint64(p.Limit)).Offset(uint64(p.Offset()))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into a LIKE pattern matching it as a
// literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

func toID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// toIDs converts several scanned ids at once, failing on the first bad one.
func toIDs(ids ...uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		converted, err := toID(id)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
