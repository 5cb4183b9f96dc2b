package contact

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// Submission is one contact-form payload.
type Submission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

// Complete reports whether all four fields are non-empty.
// Whitespace-only values count as present.
func (s Submission) Complete() bool {
	return s.Name != "" && s.Email != "" && s.Organization != "" && s.Message != ""
}

// One or more non-whitespace, non-@ characters on each side of the @ and
// after the last dot. The class matches ECMAScript \s, which also covers
// \v, all Zs spaces, U+2028, U+2029 and U+FEFF.
const nonSpaceOrAt = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + nonSpaceOrAt + `+@` + nonSpaceOrAt + `+\.` + nonSpaceOrAt + `+$`)

// ValidEmail reports whether s looks like name@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseSubmission reads a JSON request body.
//
// Only JSON string values are taken; numbers, booleans, objects and null
// leave the field empty, as does a body that is valid JSON but not an
// object. A body that is not JSON at all, or is the literal null, returns
// ErrMalformedBody.
func ParseSubmission(body []byte) (Submission, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) || bytes.Equal(trimmed, []byte("null")) {
		return Submission{}, ErrMalformedBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Submission{}, nil
	}

	return Submission{
		Name:         stringField(fields, "name"),
		Email:        stringField(fields, "email"),
		Organization: stringField(fields, "organization"),
		Message:      stringField(fields, "message"),
	}, nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
