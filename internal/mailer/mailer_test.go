package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderBody(t *testing.T) {
	start := time.Date(2025, 6, 12, 9, 30, 0, 0, time.Local)

	body := ReminderBody("Park Cleanup", start)

	assert.Equal(t, `The event "Park Cleanup" starts tomorrow at 09:30.`, body)
}
