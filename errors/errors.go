// Package errors provides error handling for the MC1 analysis pipeline.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Wrap with context
//	if err := json.Unmarshal(data, &doc); err != nil {
//	    return errors.Wrap(errors.ErrParse, err.Error())
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check that the file is node-link JSON")
//
//	// Check errors
//	if errors.Is(err, errors.ErrReferentialIntegrity) {
//	    // rerun with --missing-nodes create
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the pipeline's failure taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrParse indicates the input graph file is missing, unreadable or malformed
	ErrParse = New("parse error")

	// ErrReferentialIntegrity indicates an edge names a node id absent from the node list
	ErrReferentialIntegrity = New("referential integrity error")

	// ErrDataQuality indicates a per-record value that cannot be used (e.g. a non-numeric year).
	// Never fatal: affected records are excluded from the aggregate that needed the value.
	ErrDataQuality = New("data quality error")

	// ErrIO indicates an output artifact could not be written
	ErrIO = New("io error")

	// ErrInvalidConfig indicates configuration values failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsParseError checks if an error is or wraps ErrParse
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsDataQualityError checks if an error is or wraps ErrDataQuality
func IsDataQualityError(err error) bool {
	return err != nil && Is(err, ErrDataQuality)
}

// IsIOError checks if an error is or wraps ErrIO
func IsIOError(err error) bool {
	return err != nil && Is(err, ErrIO)
}

// NewDataQualityError creates a data-quality error with a formatted message
func NewDataQualityError(format string, args ...interface{}) error {
	return Wrap(ErrDataQuality, Newf(format, args...).Error())
}

// NewInvalidConfigError creates an invalid-configuration error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
