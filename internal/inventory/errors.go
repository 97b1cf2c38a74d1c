package inventory

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindSlugMismatch
	KindEmptyRequiredArray
	KindInvalidEnumValue
	KindMissingFile
	KindMalformedJSON
	KindCrossReference
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindSlugMismatch:
		return "slug_mismatch"
	case KindEmptyRequiredArray:
		return "empty_required_array"
	case KindInvalidEnumValue:
		return "invalid_enum_value"
	case KindMissingFile:
		return "missing_file"
	case KindMalformedJSON:
		return "malformed_json"
	case KindCrossReference:
		return "cross_reference"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *ValidationError of the same kind.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrSlugMismatch       = errors.New("slug mismatch")
	ErrEmptyRequiredArray = errors.New("empty required array")
	ErrInvalidEnumValue   = errors.New("invalid enum value")
	ErrMissingFile        = errors.New("missing file")
	ErrMalformedJSON      = errors.New("malformed json")
	ErrCrossReference     = errors.New("cross-reference mismatch")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissingField:
		return ErrMissingField
	case KindSlugMismatch:
		return ErrSlugMismatch
	case KindEmptyRequiredArray:
		return ErrEmptyRequiredArray
	case KindInvalidEnumValue:
		return ErrInvalidEnumValue
	case KindMissingFile:
		return ErrMissingFile
	case KindMalformedJSON:
		return ErrMalformedJSON
	case KindCrossReference:
		return ErrCrossReference
	default:
		return nil
	}
}

// PackKind names the kind of data pack an error refers to.
type PackKind string

const (
	PackCity    PackKind = "city pack"
	PackCluster PackKind = "cluster"
)

// ValidationError is a build-fatal data pack violation.
type ValidationError struct {
	Kind   Kind
	Pack   PackKind
	Slug   string
	Field  string // offending field, when the rule concerns one
	Detail string
	Err    error // underlying decode error, if any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Pack, e.Slug, e.Detail)
}

// Unwrap returns the underlying decode error, if any.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *ValidationError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}

func missingField(pack PackKind, slug, field string) error {
	return &ValidationError{
		Kind: KindMissingField, Pack: pack, Slug: slug, Field: field,
		Detail: fmt.Sprintf("missing required field %q", field),
	}
}

func emptyArray(pack PackKind, slug, field string) error {
	return &ValidationError{
		Kind: KindEmptyRequiredArray, Pack: pack, Slug: slug, Field: field,
		Detail: fmt.Sprintf("%s must be a non-empty array", field),
	}
}

func malformed(pack PackKind, slug string, err error) error {
	return &ValidationError{
		Kind: KindMalformedJSON, Pack: pack, Slug: slug,
		Detail: fmt.Sprintf("malformed JSON: %v", err),
		Err:    err,
	}
}

// MissingFile reports a pack file that a caller required but could not find.
func MissingFile(pack PackKind, slug, path string) error {
	return &ValidationError{
		Kind: KindMissingFile, Pack: pack, Slug: slug,
		Detail: fmt.Sprintf("missing file %s", path),
	}
}
