package paymentService

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("capture: %w", wrapError(ErrGateway, "Could not initiate payment", cause))

	assert.ErrorIs(t, err, ErrGateway)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Could not initiate payment", Message(err, "fallback"))

	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}
