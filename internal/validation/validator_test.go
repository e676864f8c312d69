package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/activitymap/activitymap-server/internal/errors"
	"github.com/activitymap/activitymap-server/internal/validation"
)

type testRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Country  string `json:"nationality,omitempty" validate:"required,len=2"`
	Handle   string `json:"twitterUsername" validate:"required"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{FullName: "Ada Lovelace", Country: "GB", Handle: "@ada"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name        string
		req         testRequest
		wantMessage string
		wantFields  map[string]string
	}{
		{
			name:        "one missing field",
			req:         testRequest{Country: "GB", Handle: "@ada"},
			wantMessage: "missing required fields: fullName",
			wantFields:  map[string]string{"fullName": "is required"},
		},
		{
			name:        "missing fields are sorted",
			req:         testRequest{Country: "GB"},
			wantMessage: "missing required fields: fullName, twitterUsername",
			wantFields:  map[string]string{"fullName": "is required", "twitterUsername": "is required"},
		},
		{
			name:        "invalid and missing",
			req:         testRequest{Country: "GBR"},
			wantMessage: "missing required fields: fullName, twitterUsername; invalid fields: nationality",
			wantFields: map[string]string{
				"fullName":        "is required",
				"twitterUsername": "is required",
				"nationality":     "must be exactly 2 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
			assert.Equal(t, tt.wantMessage, domainErr.Message)
			assert.Equal(t, tt.wantFields, domainErr.Details)
		})
	}
}

func TestValidator_NonStructInput(t *testing.T) {
	v := validation.New()

	err := v.Validate("not a struct")
	require.Error(t, err)

	var domainErr *domainerrors.Error
	assert.False(t, domainerrors.As(err, &domainErr))
}
