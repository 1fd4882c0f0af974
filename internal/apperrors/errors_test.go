package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Classification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		status int
	}{
		{"not found", apperrors.NewNotFoundError("quote q1 not found"), apperrors.ErrNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("discount must be between 0 and 100"), apperrors.ErrValidation, http.StatusBadRequest},
		{"duplicate", apperrors.NewDuplicateError("vendor exists"), apperrors.ErrDuplicate, http.StatusConflict},
		{"rate not found", apperrors.NewRateNotFoundError("EUR", time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)), apperrors.ErrRateNotFound, http.StatusUnprocessableEntity},
		{"wrapped validation", fmt.Errorf("create quote: %w", apperrors.ErrValidation), apperrors.ErrValidation, http.StatusBadRequest},
		{"plain", errors.New("boom"), nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.target != nil {
				assert.ErrorIs(t, tt.err, tt.target)
			}
			assert.Equal(t, tt.status, apperrors.StatusCode(tt.err))
		})
	}
}

func TestNewRateNotFoundError_NamesCurrencyAndDate(t *testing.T) {
	err := apperrors.NewRateNotFoundError("GBP", time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC))
	assert.Contains(t, err.Error(), "GBP")
	assert.Contains(t, err.Error(), "2025-01-02")
}
