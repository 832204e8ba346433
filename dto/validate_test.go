package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+79161234567", true},
		{"89161234567", false},   // missing +7 prefix
		{"+7916123456", false},   // 9 digits
		{"+791612345678", false}, // 11 digits
		{"+7916123456a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidPhone(tt.phone))
		})
	}
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "v1@x.com",
		Phone:     "+79161111111",
		Password:  "secret1",
	}
}

func TestValidateStruct_RegisterRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(validRegister()))
	})

	t.Run("short password", func(t *testing.T) {
		body := validRegister()
		body.Password = "12345"

		msgs := ValidateStruct(body)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "password")
	})

	t.Run("bad phone format", func(t *testing.T) {
		body := validRegister()
		body.Phone = "89161234567"

		msgs := ValidateStruct(body)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "+7")
	})

	t.Run("one message per missing field", func(t *testing.T) {
		msgs := ValidateStruct(RegisterRequest{})
		assert.Len(t, msgs, 5)
	})

	t.Run("field names are the json names", func(t *testing.T) {
		body := validRegister()
		body.FirstName = ""

		msgs := ValidateStruct(body)
		require.Len(t, msgs, 1)
		assert.True(t, strings.HasPrefix(msgs[0], "firstName "), msgs[0])
	})
}

func TestValidateStruct_OrganizerRequest(t *testing.T) {
	valid := OrganizerRequest{Name: "Green City", Contact: "+79160000000", Description: "Cleanups"}
	assert.Nil(t, ValidateStruct(valid))

	t.Run("name too long", func(t *testing.T) {
		body := valid
		body.Name = strings.Repeat("x", 101)
		assert.NotNil(t, ValidateStruct(body))
	})

	t.Run("description too long", func(t *testing.T) {
		body := valid
		body.Description = strings.Repeat("x", 501)
		assert.NotNil(t, ValidateStruct(body))
	})

	t.Run("empty description ok", func(t *testing.T) {
		body := valid
		body.Description = ""
		assert.Nil(t, ValidateStruct(body))
	})
}

func TestValidateStruct_ReportRequest(t *testing.T) {
	valid := ReportRequest{
		EventID:         "68bd6ff6f80438824239b8a9",
		WorkDescription: "Sorted donations",
		Hours:           3,
		Rating:          5,
	}
	assert.Nil(t, ValidateStruct(valid))

	t.Run("hours below one", func(t *testing.T) {
		body := valid
		body.Hours = 0
		assert.NotNil(t, ValidateStruct(body))
	})

	t.Run("rating above five", func(t *testing.T) {
		body := valid
		body.Rating = 6
		assert.NotNil(t, ValidateStruct(body))
	})

	t.Run("rating optional", func(t *testing.T) {
		body := valid
		body.Rating = 0
		assert.Nil(t, ValidateStruct(body))
	})
}

func TestValidateStruct_EventRequest(t *testing.T) {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	valid := EventRequest{
		Title:       "Park cleanup",
		Description: "Bring gloves",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	assert.Nil(t, ValidateStruct(valid))

	t.Run("missing title", func(t *testing.T) {
		body := valid
		body.Title = ""
		assert.NotNil(t, ValidateStruct(body))
	})
}
