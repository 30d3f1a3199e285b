package msgerrs

// NormalizationError represents errors converting message-like inputs
// into canonical messages.
type NormalizationError struct {
	*BaseError
}

// NewNormalizationError creates a new normalization error.
func NewNormalizationError(code ErrorCode, message string, cause error) *NormalizationError {
	return &NormalizationError{
		BaseError: NewBaseError(CategoryNormalization, code, message, cause),
	}
}

// WithInput adds the offending input value to the error metadata.
func (e *NormalizationError) WithInput(input any) *NormalizationError {
	_ = e.WithMetadata("input", input)

	return e
}

// ValidationError represents option and argument validation errors.
type ValidationError struct {
	*BaseError
	field string
	value any
}

// NewValidationError creates a new validation error.
func NewValidationError(
	code ErrorCode,
	message string,
	cause error,
	field string,
	value any,
) *ValidationError {
	err := &ValidationError{
		BaseError: NewBaseError(CategoryValidation, code, message, cause),
		field:     field,
		value:     value,
	}

	// Add validation-specific metadata
	_ = err.WithMetadata("field", field)
	_ = err.WithMetadata("value", value)

	return err
}

// Field returns the offending field or option name.
func (e *ValidationError) Field() string {
	return e.field
}

// Value returns the offending value.
func (e *ValidationError) Value() any {
	return e.value
}

// SerializationError represents at-rest encoding and decoding errors.
type SerializationError struct {
	*BaseError
}

// NewSerializationError creates a new serialization error.
func NewSerializationError(code ErrorCode, message string, cause error) *SerializationError {
	return &SerializationError{
		BaseError: NewBaseError(CategorySerialization, code, message, cause),
	}
}

// WithTypeLabel adds the unrecognized type label to the error metadata.
func (e *SerializationError) WithTypeLabel(label string) *SerializationError {
	_ = e.WithMetadata("type_label", label)

	return e
}

// RenderError represents text rendering errors.
type RenderError struct {
	*BaseError
}

// NewRenderError creates a new rendering error.
func NewRenderError(code ErrorCode, message string, cause error) *RenderError {
	return &RenderError{
		BaseError: NewBaseError(CategoryRendering, code, message, cause),
	}
}

// MergeError represents chunk merging errors.
type MergeError struct {
	*BaseError
}

// NewMergeError creates a new merge error.
func NewMergeError(code ErrorCode, message string, cause error) *MergeError {
	return &MergeError{
		BaseError: NewBaseError(CategoryMerge, code, message, cause),
	}
}

// WithField adds the conflicting field name to the error metadata.
func (e *MergeError) WithField(field string) *MergeError {
	_ = e.WithMetadata("field", field)

	return e
}
