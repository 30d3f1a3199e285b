// Package msgerrs provides the error handling framework for msgkit.
// This package defines error types, categories, and utilities to support
// consistent error handling across the message normalization, merging,
// trimming, and serialization operations.
package msgerrs

import (
	"fmt"
	"maps"
)

// ErrorCategory represents different categories of errors that can occur
// in msgkit.
type ErrorCategory string

const (
	// CategoryNormalization represents errors converting message-like
	// inputs into canonical messages.
	CategoryNormalization ErrorCategory = "normalization"
	// CategoryValidation represents option and argument validation errors.
	CategoryValidation ErrorCategory = "validation"
	// CategorySerialization represents at-rest encoding and decoding errors.
	CategorySerialization ErrorCategory = "serialization"
	// CategoryRendering represents text rendering errors.
	CategoryRendering ErrorCategory = "rendering"
	// CategoryMerge represents chunk merging errors.
	CategoryMerge ErrorCategory = "merge"
)

// ErrorCode represents specific error codes within each category.
type ErrorCode string

// Normalization error codes.
const (
	ErrCodeUnsupportedInputShape ErrorCode = "unsupported_input_shape"
	ErrCodeUnknownMessageType    ErrorCode = "unknown_message_type"
	ErrCodeMissingRequiredField  ErrorCode = "missing_required_field"
)

// Validation error codes.
const (
	ErrCodeIncompatibleOptions  ErrorCode = "incompatible_options"
	ErrCodeUnrecognizedStrategy ErrorCode = "unrecognized_strategy"
)

// Serialization error codes.
const (
	ErrCodeUnrecognizedSerializedType ErrorCode = "unrecognized_serialized_type"
)

// Rendering error codes.
const (
	ErrCodeUnsupportedMessageVariant ErrorCode = "unsupported_message_variant"
)

// Merge error codes.
const (
	ErrCodeMismatchedChunkType  ErrorCode = "mismatched_chunk_type"
	ErrCodeMismatchedChunkField ErrorCode = "mismatched_chunk_field"
)

// KitError represents the base interface for all msgkit errors.
type KitError interface {
	error
	// Code returns the error code.
	Code() ErrorCode
	// Category returns the error category.
	Category() ErrorCategory
	// Unwrap returns the underlying error.
	Unwrap() error
	// Metadata returns additional error metadata.
	Metadata() map[string]any
}

// BaseError provides the base implementation for msgkit errors.
type BaseError struct {
	code     ErrorCode
	category ErrorCategory
	message  string
	cause    error
	metadata map[string]any
}

// NewBaseError creates a new base error.
func NewBaseError(
	category ErrorCategory,
	code ErrorCode,
	message string,
	cause error,
) *BaseError {
	return &BaseError{
		code:     code,
		category: category,
		message:  message,
		cause:    cause,
		metadata: make(map[string]any),
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.category, e.message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.category, e.message)
}

// Code returns the error code.
func (e *BaseError) Code() ErrorCode {
	return e.code
}

// Category returns the error category.
func (e *BaseError) Category() ErrorCategory {
	return e.category
}

// Unwrap returns the underlying error.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Metadata returns the error metadata.
func (e *BaseError) Metadata() map[string]any {
	return e.metadata
}

// WithMetadata adds metadata to the error.
func (e *BaseError) WithMetadata(key string, value any) *BaseError {
	e.metadata[key] = value

	return e
}

// WithMetadataMap adds multiple metadata items to the error.
func (e *BaseError) WithMetadataMap(metadata map[string]any) *BaseError {
	maps.Copy(e.metadata, metadata)

	return e
}
