package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "All good", map[string]string{"key": "value"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "All good", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorResponses(t *testing.T) {
	testCases := []struct {
		name         string
		fn           func(c echo.Context, msg string) error
		message      string
		expectedCode int
		expectedMsg  string
	}{
		{"Bad Request", BadRequestResponse, "invalid input", http.StatusBadRequest, "invalid input"},
		{"Unauthorized Default", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"Forbidden Default", ForbiddenResponse, "", http.StatusForbidden, "Forbidden"},
		{"Not Found", NotFoundResponse, "no such transaction", http.StatusNotFound, "no such transaction"},
		{"Payment Required Default", PaymentRequiredResponse, "", http.StatusPaymentRequired, "Payment required"},
		{"Internal Server Error", InternalServerErrorResponse, "boom", http.StatusInternalServerError, "boom"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tc.fn(c, tc.message)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)

			var resp ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.expectedMsg, resp.Error)
			assert.Equal(t, tc.expectedCode, resp.Code)
		})
	}
}
