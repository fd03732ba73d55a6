package breaktype

import "errors"

var (
	ErrBreakTypeNotFound   = errors.New("break type not found")
	ErrBreakTypeNameExists = errors.New("break type with this name already exists")
)
