package agenda

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidEditMode     = errors.New("edit mode must be single, from or all")
	ErrUnsupportedProperty = errors.New("property must be name, description, location or public")
)
