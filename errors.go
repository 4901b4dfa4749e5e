// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package jsrender

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDocument    = errors.New("empty document")
	ErrMissingAttribute = errors.New("missing attribute")
	ErrRecursionLimit   = errors.New("recursion limit exceeded")
	ErrUnknownTag       = errors.New("unknown node type")
)

// InputError is returned when the input file can't be read or decoded.
type InputError struct {
	Op   string // read, decode
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// RenderError is returned when a node can't be rendered.
// Err is one of ErrUnknownTag, ErrMissingAttribute, or ErrRecursionLimit.
type RenderError struct {
	Tag  Kind
	Attr string // set for ErrMissingAttribute
	Path string // attribute path from the root, e.g. "children[0].body"
	Line int    // from the node's lineno, zero if unknown
	Err  error
}

func (e *RenderError) Error() string {
	var sb strings.Builder
	sb.WriteString("render")
	if e.Line > 0 {
		_, _ = fmt.Fprintf(&sb, ": line %d", e.Line)
	}
	if e.Path != "" {
		_, _ = fmt.Fprintf(&sb, ": %s", e.Path)
	}
	switch {
	case errors.Is(e.Err, ErrUnknownTag):
		_, _ = fmt.Fprintf(&sb, ": %v %q", e.Err, string(e.Tag))
	case e.Attr != "":
		_, _ = fmt.Fprintf(&sb, ": %s: %v %q", e.Tag, e.Err, e.Attr)
	default:
		_, _ = fmt.Fprintf(&sb, ": %s: %v", e.Tag, e.Err)
	}
	return sb.String()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Error code constants for reporting.
const (
	ErrCodeInputRead        = "INPUT_READ"
	ErrCodeInputDecode      = "INPUT_DECODE"
	ErrCodeUnknownTag       = "UNKNOWN_TAG"
	ErrCodeMissingAttribute = "MISSING_ATTRIBUTE"
	ErrCodeRecursionLimit   = "RECURSION_LIMIT"
	ErrCodeUnknown          = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		if ie.Op == "read" {
			return ErrCodeInputRead
		}
		return ErrCodeInputDecode
	}
	var re *RenderError
	if errors.As(err, &re) {
		switch {
		case errors.Is(re.Err, ErrUnknownTag):
			return ErrCodeUnknownTag
		case errors.Is(re.Err, ErrMissingAttribute):
			return ErrCodeMissingAttribute
		case errors.Is(re.Err, ErrRecursionLimit):
			return ErrCodeRecursionLimit
		}
	}
	return ErrCodeUnknown
}
