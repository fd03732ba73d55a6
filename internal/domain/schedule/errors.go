package schedule

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftNameExists = errors.New("shift with this name already exists")
	ErrZeroLengthShift = errors.New("shift start and end times must differ")
)
