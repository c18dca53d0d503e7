package oerror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewFormats(t *testing.T) {
	require.Equal(t, "actor 7 skipped", New("actor %d skipped", 7).Error())
	require.Equal(t, "100%", New("100%").Error())
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := errors.Wrapf(ErrMissingShape, "actor %d", 3)
	require.ErrorIs(t, err, ErrMissingShape)
	require.Equal(t, ErrMissingShape, errors.Cause(err))
	require.NotErrorIs(t, err, ErrInvalidShape)
}
