package domain_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/domain"
)

func TestInputError_MatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("not a valid number")
	err := fmt.Errorf("read: %w", &domain.InputError{Field: "price", Value: "abc", Err: cause})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, cause)

	var ie *domain.InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "price", ie.Field)
	assert.Equal(t, `price "abc": not a valid number`, ie.Error())
}

func TestInputError_WithoutCause(t *testing.T) {
	err := &domain.InputError{Field: "visitor", Value: "x"}

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, `visitor "x"`, err.Error())
}

func TestExportError(t *testing.T) {
	err := &domain.ExportError{Path: "/ro/report.txt", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "export /ro/report.txt: permission denied", err.Error())
}
