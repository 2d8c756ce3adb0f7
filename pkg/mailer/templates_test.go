package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEventConfirmation(t *testing.T) {
	subject, body, err := RenderEventConfirmation(map[string]string{
		"name":     "Street Carnival",
		"date":     "2026-09-12",
		"time":     "16:00",
		"location": "Freedom Park",
		"url":      "https://yrdly.app/events/carnival",
	})

	require.NoError(t, err)
	assert.Equal(t, "Yrdly - You're going to Street Carnival", subject)
	assert.Contains(t, body, "Street Carnival")
	assert.Contains(t, body, "2026-09-12")
	assert.Contains(t, body, "16:00")
	assert.Contains(t, body, "Freedom Park")
	assert.Contains(t, body, "https://yrdly.app/events/carnival")
}

func TestRenderEventConfirmation_OmitsEmptyURL(t *testing.T) {
	_, body, err := RenderEventConfirmation(map[string]string{
		"name": "Street Carnival",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "Event details:")
}
