package testutil

import (
	"errors"
)

const UpstreamError = "riot api error occurred"

type OperationResult[T any] struct {
	Data T
	Err  error
}

// Return a generic typed error return for an upstream call.
func GetMockUpstreamError[T any]() *OperationResult[T] {
	return NewErrorResult[T](UpstreamError)
}

func NewErrorResult[T any](err string) *OperationResult[T] {
	return &OperationResult[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// Wrap a generic Data into an OperationResult struct.
func NewSuccessResult[T any](Data T) *OperationResult[T] {
	return &OperationResult[T]{
		Data: Data,
		Err:  nil,
	}
}
