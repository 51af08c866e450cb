package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/model"
	"github.com/costmanager/costmanager-server/internal/testutil"
)

func TestAbout(t *testing.T) {
	w := serve(http.MethodGet, "/api/about", "/api/about", "", About)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(model.Maintainers))
	for i, m := range model.Maintainers {
		assert.Equal(t, map[string]string{
			"first_name": m.FirstName,
			"last_name":  m.LastName,
			"id":         m.ID,
			"email":      m.Email,
		}, got[i])
	}
}

func TestHealth_Check(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		p := &MockPinger{}
		p.On("Ping", mock.Anything).Return(nil)

		w := serve(http.MethodGet, "/healthz", "/healthz", "", NewHealth(p, testutil.MakeNoopLogger()).Check)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		p.AssertExpectations(t)
	})

	t.Run("store down", func(t *testing.T) {
		p := &MockPinger{}
		p.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		w := serve(http.MethodGet, "/healthz", "/healthz", "", NewHealth(p, testutil.MakeNoopLogger()).Check)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			in:         apperror.NewErrValidation("Invalid category"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid category",
		},
		{
			name:       "wrapped app error keeps its status",
			in:         errors.Join(errors.New("context"), apperror.NewErrUserNotFound("1")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "archive disabled",
			in:         apperror.NewErrArchiveDisabled(),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Report archive is not configured",
		},
		{
			name:       "other errors are internal",
			in:         errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(http.MethodGet, "/", "/", "", func(c *gin.Context) { handleError(c, tt.in) })

			assert.Equal(t, tt.wantStatus, w.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestHandleError_AttachesSubject(t *testing.T) {
	var errs []*gin.Error
	w := serve(http.MethodGet, "/", "/", "", func(c *gin.Context) {
		handleError(c, apperror.NewErrUserNotFound("42"))
		errs = c.Errors
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, errs, 1)
	assert.Equal(t, "42", errs[0].Meta)
	assert.True(t, errs[0].IsType(gin.ErrorTypePublic))
}

func TestHandleError_NoSubjectNotAttached(t *testing.T) {
	var errs []*gin.Error
	serve(http.MethodGet, "/", "/", "", func(c *gin.Context) {
		handleError(c, apperror.NewErrRequiredFields())
		errs = c.Errors
	})

	assert.Empty(t, errs)
}

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: `"abc"`, want: "abc"},
		{in: `123123`, want: "123123"},
		{in: `1.5`, want: "1.5"},
		{in: `null`, want: ""},
		{in: `""`, want: ""},
		{in: `false`, want: ""},
		{in: `0`, want: ""},
		{in: `-0`, want: ""},
		{in: `0.0`, want: ""},
		{in: `0e10`, want: ""},
		{in: `"0"`, want: "0"},
		{in: `true`, wantErr: true},
		{in: `{"id":1}`, wantErr: true},
		{in: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id flexibleID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(id))
		})
	}
}

func TestFlexibleText(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: `"food"`, want: "food"},
		{in: `5`, want: "5"},
		{in: `true`, want: "true"},
		{in: `false`, want: ""},
		{in: `0`, want: ""},
		{in: `null`, want: ""},
		{in: `["food"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var text flexibleText
			err := json.Unmarshal([]byte(tt.in), &text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
		})
	}
}
