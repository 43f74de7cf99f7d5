package forms

import (
	"errors"
	"testing"

	apibridge "github.com/apibridge/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr error
		wantMsg string
	}{
		{name: "object", text: `{"a": 1}`},
		{name: "invalid", text: `{a:1}`, wantErr: ErrInvalidJSON, wantMsg: "Invalid JSON in Auth Config"},
		{name: "array", text: `[1, 2]`, wantErr: ErrNotObject, wantMsg: "Auth Config must be an Object"},
		{name: "string", text: `"hi"`, wantErr: ErrNotObject, wantMsg: "Auth Config must be an Object"},
		{name: "empty", text: ``, wantErr: ErrInvalidJSON, wantMsg: "Invalid JSON in Auth Config"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj, err := ParseObject(FieldAuthConfig, tt.text)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, float64(1), obj["a"])
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestParseArray(t *testing.T) {
	t.Parallel()

	arr, err := ParseArray(FieldInteractionScript, `[{"action":"wait","ms":100}]`)
	require.NoError(t, err)
	assert.Len(t, arr, 1)

	_, err = ParseArray(FieldInteractionScript, `{"action":"wait"}`)
	require.ErrorIs(t, err, ErrNotArray)
	assert.EqualError(t, err, "Interaction Script must be an Array")

	_, err = ParseArray(FieldInteractionScript, `[`)
	require.ErrorIs(t, err, ErrInvalidJSON)
	assert.EqualError(t, err, "Invalid JSON in Interaction Script")
}

func TestParseOptional_Blank(t *testing.T) {
	t.Parallel()

	obj, err := ParseOptionalObject(FieldAuthConfig, "  \n")
	require.NoError(t, err)
	assert.Empty(t, obj)
	assert.NotNil(t, obj)

	arr, err := ParseOptionalArray(FieldInteractionScript, "")
	require.NoError(t, err)
	assert.Empty(t, arr)
	assert.NotNil(t, arr)
}

func TestFieldError_IsBridgeError(t *testing.T) {
	t.Parallel()

	_, err := ParseObject(FieldSelectors, `nope`)

	var bridgeErr apibridge.BridgeError
	require.True(t, errors.As(err, &bridgeErr))

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldSelectors, fieldErr.Field)
	assert.NotEmpty(t, fieldErr.Detail)
}
