package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("delete question: %w", Unprocessable(cause))

	assert.Equal(t, KindUnprocessable, KindOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestKindOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "", MessageOf(errors.New("boom")))
}

func TestBadRequestFormatsMessage(t *testing.T) {
	err := BadRequest("Question with id %d does not exist.", 999999)

	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, "Question with id 999999 does not exist.", MessageOf(err))
	assert.Contains(t, err.Error(), "bad_request")
}
