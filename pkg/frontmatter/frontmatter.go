// Package frontmatter splits YAML frontmatter from a document body.
//
// Documents look like:
//
//	---
//	title: Journey
//	order: 2
//	---
//	Body text...
//
// Both the page content loader and the mail renderer use it.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates malformed frontmatter.
var ErrInvalid = errors.New("frontmatter: invalid")

var delimiter = []byte("---")

// Document is a parsed file: generic metadata plus the remaining body.
type Document struct {
	Metadata map[string]any
	Body     []byte
}

// Parse splits content into metadata and body. Content without a leading
// delimiter is returned whole as the body with empty metadata.
func Parse(content []byte) (*Document, error) {
	raw, body, err := split(content)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return &Document{Metadata: metadata, Body: body}, nil
}

// Decode unmarshals the frontmatter into meta and returns the body.
func Decode(content []byte, meta any) ([]byte, error) {
	raw, body, err := split(content)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return body, nil
}

func split(content []byte) (meta, body []byte, err error) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalid)
	}

	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalid)
	}

	body = rest[end+len(delimiter):]
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}
	return rest[:end], body, nil
}
