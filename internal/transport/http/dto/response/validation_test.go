package response

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONNameValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestNewValidationError_FlattensByJSONName(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
	}

	v := newJSONNameValidator()
	err := v.Struct(payload{Username: "a", Email: "not-an-email"})
	require.Error(t, err)

	resp := NewValidationError(err)

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "invalid_body", resp.Error)
	assert.Equal(t, []string{"must be at least 2"}, resp.FieldErrors["username"])
	assert.Equal(t, []string{"must be a valid email address"}, resp.FieldErrors["email"])
}

func TestNewValidationError_RequiredAndMax(t *testing.T) {
	type payload struct {
		Quantity int `json:"quantity" validate:"required,max=10"`
	}

	v := newJSONNameValidator()

	t.Run("missing value", func(t *testing.T) {
		resp := NewValidationError(v.Struct(payload{}))
		assert.Equal(t, []string{"is required"}, resp.FieldErrors["quantity"])
	})

	t.Run("over the cap", func(t *testing.T) {
		resp := NewValidationError(v.Struct(payload{Quantity: 11}))
		assert.Equal(t, []string{"must be at most 10"}, resp.FieldErrors["quantity"])
	})
}

func TestNewValidationError_NonValidatorError(t *testing.T) {
	resp := NewValidationError(errors.New("unexpected EOF"))

	assert.Equal(t, []string{"unexpected EOF"}, resp.FieldErrors["body"])
}

func TestErrorResponses(t *testing.T) {
	plain := Error("event_not_found")
	assert.Equal(t, "error", plain.Status)
	assert.Equal(t, "event_not_found", plain.Error)
	assert.Empty(t, plain.Details)

	detailed := ErrorWithDetails("store_error", "relation does not exist")
	assert.Equal(t, "relation does not exist", detailed.Details)
}
