// Package dbconv holds the conversions every GORM repository shares:
// identifiers between kernel.UUID and uuid.UUID, and driver errors into
// the domain error family.
package dbconv

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs converts domain identifiers for an IN clause.
func IDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func ID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// OptionalID converts a nullable column.
func OptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := ID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// OptionalRaw converts a nullable domain identifier for storage.
func OptionalRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and
// passes every other error through.
func NotFound(err error, param string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}

// IsDuplicate reports a unique constraint violation. It relies on the
// connection being opened with gorm.Config.TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
