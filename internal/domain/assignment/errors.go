package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDuplicateRestRow   = errors.New("rest marker already set for this day")
)
