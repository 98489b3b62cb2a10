package canvas

import "errors"

var (
	ErrUnreachable     = errors.New("lms api unreachable")
	ErrNoSyllabus      = errors.New("no syllabus found for this course")
	ErrAlreadyUploaded = errors.New("syllabus already uploaded for this course")
	ErrUnknownCourse   = errors.New("course not in catalog")
)
