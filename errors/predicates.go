package errors

import "errors"

// IsCodecUnavailable checks if an error stems from a missing document codec.
func IsCodecUnavailable(err error) bool {
	return errors.Is(err, ErrCodecUnavailable)
}

// IsFileError checks if an error is an I/O or decode failure against a
// backing settings file.
func IsFileError(err error) bool {
	if err == nil {
		return false
	}
	var fe *FileError
	return errors.As(err, &fe)
}

// IsValidationError checks if an error is a structural validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConfigError checks if an error belongs to the configuration error
// taxonomy at all (base, file, or validation tier).
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var ce *ConfigError
	return errors.As(err, &ce) || IsFileError(err) || IsValidationError(err)
}
