package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrap(WithStack(errSentinel), "load order")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "load order: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsIdentity")
}

func TestNilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))
	assert.NoError(t, WithStack(nil))
}

func TestAsThroughWrap(t *testing.T) {
	err := Wrap(WithStack(&codeError{code: "CONFLICT"}), "pay order")

	var target *codeError
	assert.True(t, As(err, &target))
	assert.Equal(t, "CONFLICT", target.code)
}
