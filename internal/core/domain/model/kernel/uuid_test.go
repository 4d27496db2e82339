package kernel_test

import (
	"encoding/json"
	"testing"

	"embroidery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, a.Validate())
	assert.False(t, a.IsEqual(b))
}

func TestUUIDFromString(t *testing.T) {
	for _, in := range []string{canonical, "{" + canonical + "}", "urn:uuid:" + canonical, "550e8400e29b41d4a716446655440000"} {
		id, err := kernel.UUIDFromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, canonical, id.String())
	}

	for _, in := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
		_, err := kernel.UUIDFromString(in)
		require.Error(t, err, in)
		assert.Contains(t, err.Error(), "invalid UUID format")
	}
}

func TestUUIDFromBytes(t *testing.T) {
	raw := uuid.MustParse(canonical)
	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, canonical, id.String())
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)

	_, err = kernel.UUIDFromBytes(make([]byte, 16))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestParseUUIDs(t *testing.T) {
	parsed, invalid := kernel.ParseUUIDs([]string{canonical, "bad", "00000000-0000-0000-0000-000000000000"})
	require.Len(t, parsed, 1)
	assert.Equal(t, canonical, parsed[0].String())
	assert.Equal(t, []string{"bad", "00000000-0000-0000-0000-000000000000"}, invalid)
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_JSON(t *testing.T) {
	type payload struct {
		ID kernel.UUID `json:"id"`
	}
	id, _ := kernel.UUIDFromString(canonical)

	out, err := json.Marshal(payload{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+canonical+`"}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, id.IsEqual(back.ID))

	require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &back))
}
