package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewHexColor(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"#FF6B6B", true},
		{"#abc", true},
		{"#ABCDEF", true},
		{"", true},
		{"FF6B6B", false},
		{"#GGGGGG", false},
		{"#12345", false},
		{"#1234567", false},
	}

	for _, tc := range cases {
		color, err := NewHexColor(tc.input)
		if tc.valid {
			assert.NoError(t, err, tc.input)
			assert.Equal(t, tc.input, string(color))
		} else {
			assert.Error(t, err, tc.input)
		}
	}
}

func TestNewUserName_Bounds(t *testing.T) {
	_, err := NewUserName("ab")
	assert.Error(t, err)

	_, err = NewUserName(strings.Repeat("a", 51))
	assert.Error(t, err)

	name, err := NewUserName("Ana")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", string(name))
}

func TestNewTaskTitle_Bounds(t *testing.T) {
	_, err := NewTaskTitle("")
	assert.Error(t, err)

	_, err = NewTaskTitle(strings.Repeat("x", 256))
	assert.Error(t, err)

	title, err := NewTaskTitle(strings.Repeat("x", 255))
	assert.NoError(t, err)
	assert.Len(t, string(title), 255)
}

func TestNewEmail(t *testing.T) {
	_, err := NewEmail("not-an-email")
	assert.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)

	email, err := NewEmail("ana@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", string(email))
}

func TestNewPriority(t *testing.T) {
	for _, valid := range []string{"LOW", "MEDIUM", "HIGH"} {
		p, err := NewPriority(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(p))
	}

	_, err := NewPriority("URGENT")
	assert.Error(t, err)

	_, err = NewPriority("medium")
	assert.Error(t, err)
}

func TestNewTagIDs_DedupesAndDropsBlanks(t *testing.T) {
	id := uuid.New()

	ids, err := NewTagIDs([]string{id.String(), "", id.String(), "  "})
	assert.NoError(t, err)
	assert.Len(t, ids, 1)
	assert.Equal(t, id, ids[0])

	_, err = NewTagIDs([]string{"not-a-uuid"})
	assert.Error(t, err)

	empty, err := NewTagIDs(nil)
	assert.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestParseDate(t *testing.T) {
	ts, err := ParseDate("dueDate", "2026-09-15T10:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 15, ts.Day())

	ts, err = ParseDate("dueDate", "2026-09-15")
	assert.NoError(t, err)
	assert.Equal(t, 15, ts.Day())

	_, err = ParseDate("dueDate", "15/09/2026")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Abc123!x", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSymbols123", false},
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.valid {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}
