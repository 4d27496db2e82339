package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"embroidery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("returnId", "r-1")

		assert.Equal(t, "returnId", err.ParamName)
		assert.Equal(t, "object not found: r-1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("assignmentId", "a-9", errors.New("no rows"))

		assert.Equal(t,
			"object not found: param is: assignmentId, ID is: a-9 (cause: no rows)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("po", errors.New("blank"))
		assert.Equal(t, "value is invalid: po (cause: blank)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")
		assert.Equal(t, "value is required: username", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("month", 13, 1, 12)
		assert.Equal(t, "value is invalid: 13 is month, min value is 1, max value is 12", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("out of range strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestCodedError(t *testing.T) {
	cause := errors.New("tx aborted")
	err := errs.Wrap(errs.CodeConflict, cause, "return changed concurrently").
		WithDetails([]string{"r-1"})

	assert.Equal(t, errs.CodeConflict, err.Code())
	assert.Equal(t, "return changed concurrently", err.Message())
	assert.Equal(t, []string{"r-1"}, err.Details())
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("confirm: %w", err)
	require.NotNil(t, errs.As(wrapped))
	assert.Equal(t, errs.CodeConflict, errs.CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"nil", nil, ""},
		{"not found", errs.NewObjectNotFoundError("order", "x"), errs.CodeNotFound},
		{"required", errs.NewValueIsRequiredError("qty"), errs.CodeValidation},
		{"out of range", errs.NewValueIsOutOfRangeError("qty", 0, 1, 10), errs.CodeValidation},
		{"coded", errs.New(errs.CodeStateConflict, "already paid"), errs.CodeStateConflict},
		{"plain", errors.New("boom"), errs.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.CodeOf(tc.err))
		})
	}
}

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, errs.MetadataFor(errs.CodeStateConflict).HTTPStatus)
	assert.Equal(t, http.StatusConflict, errs.MetadataFor(errs.CodeDependentResource).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, errs.MetadataFor("UNKNOWN").HTTPStatus)
	assert.False(t, errs.MetadataFor(errs.CodeInternal).DetailsAllowed)
}
