package directory

import "errors"

var (
	ErrInvalidID          = errors.New("directory: invalid id")
	ErrEmployeeNotFound   = errors.New("directory: employee not found")
	ErrFullNameRequired   = errors.New("directory: full name is required")
	ErrInvalidGender      = errors.New("directory: invalid gender")
	ErrInvalidState       = errors.New("directory: state is not in the admissible list")
	ErrInvalidDateOfBirth = errors.New("directory: invalid date of birth")
	ErrPersistence        = errors.New("directory: persistence failure")
)
