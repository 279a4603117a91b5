package lib_test

import (
	"minitienda_server/lib"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func TestExtractAndValidateBody(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ana","email":"ana@example.com"}`))
		body, err := lib.ExtractAndValidateBody[sampleBody](r)
		require.NoError(t, err)
		assert.Equal(t, "Ana", body.Name)
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ana"}`))
		_, err := lib.ExtractAndValidateBody[sampleBody](r)

		var ve *lib.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Errors, 1)
		assert.Equal(t, "email", ve.Errors[0].Field)
		assert.Equal(t, "is required", ve.Errors[0].Message)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ana","email":"ana@example.com","extra":1}`))
		_, err := lib.ExtractAndValidateBody[sampleBody](r)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
		_, err := lib.ExtractAndValidateBody[sampleBody](r)
		assert.Error(t, err)
	})
}
