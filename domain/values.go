package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validated newtypes. Each constructor checks its format rule once; values of
// these types are trusted everywhere downstream.

type (
	UserName        string
	Email           string
	CategoryName    string
	TagName         string
	TaskTitle       string
	TaskDescription string
	HexColor        string
	Priority        string
)

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func boundedString(field, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if length < min {
		return invalid(field, fmt.Sprintf("must be at least %d characters long", min))
	}
	if length > max {
		return invalid(field, fmt.Sprintf("must be at most %d characters long", max))
	}
	return nil
}

// ParseID validates a UUID-format identifier. The field name is carried into
// the error so handlers can report which id was malformed.
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, invalid(field, "must be a valid UUID")
	}
	return id, nil
}

func NewUserName(value string) (UserName, error) {
	if err := boundedString("name", value, 3, 50); err != nil {
		return "", err
	}
	return UserName(value), nil
}

func NewEmail(value string) (Email, error) {
	if !emailPattern.MatchString(value) {
		return "", invalid("email", "must be a valid email address")
	}
	return Email(value), nil
}

func NewCategoryName(value string) (CategoryName, error) {
	if err := boundedString("name", value, 1, 50); err != nil {
		return "", err
	}
	return CategoryName(value), nil
}

func NewTagName(value string) (TagName, error) {
	if err := boundedString("name", value, 1, 50); err != nil {
		return "", err
	}
	return TagName(value), nil
}

func NewTaskTitle(value string) (TaskTitle, error) {
	if err := boundedString("title", value, 1, 255); err != nil {
		return "", err
	}
	return TaskTitle(value), nil
}

func NewTaskDescription(value string) (TaskDescription, error) {
	if err := boundedString("description", value, 0, 1000); err != nil {
		return "", err
	}
	return TaskDescription(value), nil
}

// NewHexColor accepts #RGB or #RRGGBB. The empty string means "no color" and
// is valid, since color is optional on both categories and tags.
func NewHexColor(value string) (HexColor, error) {
	if value == "" {
		return "", nil
	}
	if !hexColorPattern.MatchString(value) {
		return "", invalid("color", "must be a valid hex color")
	}
	return HexColor(value), nil
}

func NewPriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), nil
	}
	return "", invalid("priority", "must be one of LOW, MEDIUM, HIGH")
}

// TagIDs is a de-duplicated set of tag identifiers. Blank entries are
// dropped rather than rejected, matching the lenient input contract.
type TagIDs []uuid.UUID

func NewTagIDs(values []string) (TagIDs, error) {
	seen := make(map[uuid.UUID]bool, len(values))
	ids := make(TagIDs, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		id, err := ParseID("tagIds", v)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func (t TagIDs) IsEmpty() bool {
	return len(t) == 0
}

func (t TagIDs) Strings() []string {
	out := make([]string, len(t))
	for i, id := range t {
		out[i] = id.String()
	}
	return out
}

// ParseDate accepts RFC 3339 timestamps and plain dates, the two formats the
// API receives in bodies and query parameters.
func ParseDate(field, value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, nil
	}
	return time.Time{}, invalid(field, "must be a valid date")
}

// ValidatePassword enforces the registration password policy: at least 8
// characters with upper case, lower case, a digit and a symbol.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return invalid("password", "must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper {
		return invalid("password", "must contain at least one upper case letter")
	}
	if !hasLower {
		return invalid("password", "must contain at least one lower case letter")
	}
	if !hasDigit {
		return invalid("password", "must contain at least one digit")
	}
	if !hasSymbol {
		return invalid("password", "must contain at least one symbol")
	}
	return nil
}
