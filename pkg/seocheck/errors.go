package seocheck

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := c.Process(files)
//	if errors.Is(err, seocheck.ErrMissingOgpImage) {
//	    // Handle a page without a social preview image
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValidationFailed indicates a content file failed SEO validation.
	// Every *ValidationError matches it.
	ErrValidationFailed = errors.New("seo validation failed")

	// ErrMissingRequiredAttribute indicates a value marked required was absent.
	ErrMissingRequiredAttribute = errors.New("missing required attribute")

	// ErrAttributeTooLong indicates a length-constrained attribute exceeded its maximum.
	ErrAttributeTooLong = errors.New("attribute too long")

	// ErrMissingOgpImage indicates no Open Graph image could be resolved.
	ErrMissingOgpImage = errors.New("missing ogp image")
)

// ErrorKind classifies a ValidationError.
type ErrorKind int

const (
	KindMissingRequiredAttribute ErrorKind = iota + 1
	KindAttributeTooLong
	KindMissingOgpImage
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingRequiredAttribute:
		return "MissingRequiredAttribute"
	case KindAttributeTooLong:
		return "AttributeTooLong"
	case KindMissingOgpImage:
		return "MissingOgpImage"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMissingRequiredAttribute:
		return ErrMissingRequiredAttribute
	case KindAttributeTooLong:
		return ErrAttributeTooLong
	case KindMissingOgpImage:
		return ErrMissingOgpImage
	default:
		return nil
	}
}

const skipHint = "To skip validation on this file add it to the ignoreFiles array."

// ValidationError reports the first file that failed validation.
// Attribute, Max and Actual are set only for the kinds that carry them.
type ValidationError struct {
	File      string
	Kind      ErrorKind
	Attribute string
	Max       int
	Actual    int
}

// NewMissingRequiredAttribute reports a required values entry with no value.
func NewMissingRequiredAttribute(file, attr string) *ValidationError {
	return &ValidationError{File: file, Kind: KindMissingRequiredAttribute, Attribute: attr}
}

// NewAttributeTooLong reports a lengths entry whose value exceeds max.
func NewAttributeTooLong(file, attr string, max, actual int) *ValidationError {
	return &ValidationError{File: file, Kind: KindAttributeTooLong, Attribute: attr, Max: max, Actual: actual}
}

// NewMissingOgpImage reports a file without a resolvable Open Graph image.
func NewMissingOgpImage(file string) *ValidationError {
	return &ValidationError{File: file, Kind: KindMissingOgpImage}
}

// Message returns the human-readable description without the file trailer.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case KindMissingRequiredAttribute:
		return "Missing required seo attribute: " + e.Attribute
	case KindAttributeTooLong:
		return fmt.Sprintf("%s is too long, the max is %d, currently: %d long.", e.Attribute, e.Max, e.Actual)
	case KindMissingOgpImage:
		return "Missing OGP image.\n" +
			"To ignore this error set options.ogp.ignoreMissingImages to true " +
			"or provide a default image with options.ogp.defaultImage."
	default:
		return e.Kind.String()
	}
}

// Error formats the message, the offending file and the remediation hint.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message())
	b.WriteString("\nFile: ")
	b.WriteString(e.File)
	b.WriteString("\n")
	b.WriteString(skipHint)
	b.WriteString("\n\n")
	return b.String()
}

// Is matches ErrValidationFailed and the sentinel of the error's kind.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// usageErrorPatterns are prefixes of the errors cobra returns for bad invocations.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
