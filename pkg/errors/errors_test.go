package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(CodeStorage, "failed to save itinerary", cause)

	require.True(t, IsCode(err, CodeStorage))
	require.False(t, IsCode(err, CodeNotFound))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "failed to save itinerary: connection refused", err.Error())
}

func TestIsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeNotFound, "itinerary not found", nil))
	require.True(t, IsCode(err, CodeNotFound))
	require.Equal(t, "itinerary not found", Message(err))
}

func TestMessageFallsBackToErrorText(t *testing.T) {
	require.Equal(t, "", Message(nil))
	require.Equal(t, "boom", Message(fmt.Errorf("boom")))
}
