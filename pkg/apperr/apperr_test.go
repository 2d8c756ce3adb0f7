package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesCode(t *testing.T) {
	err := New(CodeNotFound, "missing")

	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeInternal))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodePermissionDenied, "nope"))

	assert.True(t, Is(err, CodePermissionDenied))
	assert.Equal(t, CodePermissionDenied, CodeOf(err))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("disk on fire")))
}

func TestMessageOfMasksUnexpectedErrors(t *testing.T) {
	assert.Equal(t, "nope", MessageOf(New(CodeInvalidArgument, "nope")))
	assert.Equal(t, "An unexpected error occurred.", MessageOf(errors.New("sql: connection reset")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("row locked")
	err := Wrap(CodeInternal, "could not accept", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not accept")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeUnauthenticated:  http.StatusUnauthorized,
		CodeInvalidArgument:  http.StatusBadRequest,
		CodeNotFound:         http.StatusNotFound,
		CodePermissionDenied: http.StatusForbidden,
		CodeAlreadyExists:    http.StatusConflict,
		CodeInternal:         http.StatusInternalServerError,
		Code("unmapped"):     http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %q", code)
	}
}
