package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("interval not found")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrInvalidPayload  = errors.New("invalid import payload")
)

// Entity names used in OpError.Resource.
const (
	EntityInterval = "interval"
	EntityStats    = "stats"
	EntityDatabase = "database"
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}

func wrapIntervalErr(op string, id int64, err error) error {
	return wrapErr(EntityInterval, op, id, err)
}
