package apierror

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidation(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	type payload struct {
		Label    string `json:"label"    validate:"required"`
		ImageURL string `json:"imageUrl" validate:"required,startswith=http"`
	}

	err := v.Struct(payload{ImageURL: "ftp://x"})
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	apiErr := FromValidation(verrs)
	assert.Contains(t, apiErr.Message, "Validation error: ")
	assert.Contains(t, apiErr.Message, "label is required")
	assert.Contains(t, apiErr.Message, `imageUrl must start with "http"`)
}

func TestNew(t *testing.T) {
	assert.Equal(t, "Category not found", New("Category not found").Message)
}
