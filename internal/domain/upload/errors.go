package upload

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("upload not found")
	ErrNotOwner        = errors.New("upload belongs to another professor")
	ErrUnauthenticated = errors.New("authentication required")
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidSemester = errors.New("semester must be Spring, Summer or Fall")
	ErrInvalidYear     = errors.New("year out of range")
	ErrDuplicate       = errors.New("a syllabus for this course and term already exists")
)

// StoreError marks a failed object-store call. The saga maps it to 502 and
// never leaves a row behind when it fires on the create path.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// RecordError marks a failed database write after the blob already exists;
// the caller has compensated by removing the blob.
type RecordError struct {
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record write: %v", e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
