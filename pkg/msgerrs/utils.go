package msgerrs

import "errors"

// AsKitError extracts a KitError from the error chain.
func AsKitError(err error) (KitError, bool) {
	var kitErr KitError
	if errors.As(err, &kitErr) {
		return kitErr, true
	}

	return nil, false
}

// IsCode checks if the error carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	if kitErr, ok := AsKitError(err); ok {
		return kitErr.Code() == code
	}

	return false
}

// IsNormalizationError checks if the error is a normalization error.
func IsNormalizationError(err error) bool {
	if kitErr, ok := AsKitError(err); ok {
		return kitErr.Category() == CategoryNormalization
	}

	return false
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	if kitErr, ok := AsKitError(err); ok {
		return kitErr.Category() == CategoryValidation
	}

	return false
}

// IsSerializationError checks if the error is a serialization error.
func IsSerializationError(err error) bool {
	if kitErr, ok := AsKitError(err); ok {
		return kitErr.Category() == CategorySerialization
	}

	return false
}

// IsMergeError checks if the error is a chunk merge error.
func IsMergeError(err error) bool {
	if kitErr, ok := AsKitError(err); ok {
		return kitErr.Category() == CategoryMerge
	}

	return false
}
