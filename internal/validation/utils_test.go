package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/directory/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID        int64  `param:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=5"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Name string `json:"name"`
}

func (p *customPayload) Validate() error {
	if p.Name == "self" {
		return CustomValidationErrors{{Field: "name", Message: "cannot be self"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := &samplePayload{}
		require.NoError(t, BindAndValidate(newContext(`{"first_name":"Ada"}`), payload))
		assert.Equal(t, int64(7), payload.ID)
		assert.Equal(t, "Ada", payload.FirstName)
	})

	t.Run("field errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"first_name":"Adelaide"}`), &samplePayload{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, []errs.FieldError{{Field: "first_name", Error: "must not exceed 5 characters"}}, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"first_name":`), &samplePayload{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Nil(t, httpErr.Errors)
	})

	t.Run("custom errors", func(t *testing.T) {
		err := BindAndValidate(newContext(`{"name":"self"}`), &customPayload{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, []errs.FieldError{{Field: "name", Error: "cannot be self"}}, httpErr.Errors)
	})
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "first_name", toSnakeCase("FirstName"))
	assert.Equal(t, "id", toSnakeCase("ID"))
	assert.Equal(t, "role_id", toSnakeCase("RoleID"))
	assert.Equal(t, "manager_id", toSnakeCase("ManagerID"))
}
