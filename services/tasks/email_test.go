package tasks

import (
	"testing"

	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailTask_PayloadSurvivesQueue(t *testing.T) {
	msg := models.EmailMessage{To: "a@b.com", Subject: "Hi", Body: "<p>x</p>", HTML: true, Kind: "booking.customer"}

	task, opts, err := NewEmailTask(msg)
	require.NoError(t, err)
	assert.Equal(t, TypeSendEmail, task.Type())
	assert.Len(t, opts, 2)

	got, err := ParseEmailTask(task)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}
