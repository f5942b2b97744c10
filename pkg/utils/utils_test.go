package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNullableString(t *testing.T) {
	var body struct {
		Parent NullableString `json:"parent"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.False(t, body.Parent.Set)
	assert.False(t, body.Parent.IsClear())

	require.NoError(t, json.Unmarshal([]byte(`{"parent":null}`), &body))
	assert.True(t, body.Parent.Set)
	assert.True(t, body.Parent.IsClear())

	body.Parent = NullableString{}
	require.NoError(t, json.Unmarshal([]byte(`{"parent":""}`), &body))
	assert.True(t, body.Parent.IsClear())

	body.Parent = NullableString{}
	require.NoError(t, json.Unmarshal([]byte(`{"parent":"65a1f0c2a1b2c3d4e5f60718"}`), &body))
	assert.False(t, body.Parent.IsClear())
	assert.Equal(t, "65a1f0c2a1b2c3d4e5f60718", *body.Parent.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"parent":12}`), &body))
}

func TestParseOptionalBool(t *testing.T) {
	assert.True(t, *ParseOptionalBool("true"))
	assert.False(t, *ParseOptionalBool(" FALSE "))
	assert.Nil(t, ParseOptionalBool(""))
	assert.Nil(t, ParseOptionalBool("yes"))
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		ids    []string
	}{
		{"not found", apperror.New(apperror.NotFound, "Menu not found"), http.StatusNotFound, nil},
		{"has children", apperror.New(apperror.HasChildren, "blocked"), http.StatusBadRequest, nil},
		{"ids", apperror.New(apperror.NotFound, "missing").WithIDs("a", "b"), http.StatusNotFound, []string{"a", "b"}},
		{"plain", errors.New("boom"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			ErrorResponse(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.ids, resp.IDs)
		})
	}
}

func TestGetObjectIDParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "65A1F0C2A1B2C3D4E5F60718"}}

	id, err := GetIDParam(c)
	require.NoError(t, err)
	assert.Equal(t, "65a1f0c2a1b2c3d4e5f60718", id)

	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	_, err = GetIDParam(c)
	assert.True(t, apperror.Is(err, apperror.ValidationFailed))
}

func TestBadRequestResponse_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "fraction", body: `{"order":1.5}`},
		{name: "beyond int64", body: `{"order":1e30}`},
		{name: "string", body: `{"order":"first"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Order *int `json:"order"`
			}
			bindErr := json.Unmarshal([]byte(tt.body), &req)
			require.Error(t, bindErr)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			BadRequestResponse(c, "Invalid request body", bindErr)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, apperror.FieldError{Field: "order", Message: "order must be an integer"}, resp.Errors[0])
		})
	}
}

func TestRegisterValidators_ObjectID(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerValidators(v))

	type body struct {
		Parent string `json:"parent" validate:"objectid"`
	}
	assert.NoError(t, v.Struct(body{Parent: "65a1f0c2a1b2c3d4e5f60718"}))

	err := v.Struct(body{Parent: "nope"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "parent", verrs[0].Field())

	assert.NotPanics(t, RegisterValidators)
	assert.NotPanics(t, RegisterValidators)
}
