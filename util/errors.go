package util

import "errors"

const (
	ERROR_EMPTY_LIST          = 101
	ERROR_INDEX_OUT_OF_BOUNDS = 102
	ERROR_BAD_INPUT_PATH      = 201
	ERROR_BAD_INPUT_VALUES    = 202
	ERROR_BAD_PATTERN         = 203
	ERROR_NO_SCENARIO         = 204
	ERROR_BAD_STATS_PATH      = 205
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

// StatusCodeOf returns the status code carried anywhere in err's chain, or 0 when there is none.
func StatusCodeOf(err error) int {
	var withCode *ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	var withCodeValue ErrorWithCode
	if errors.As(err, &withCodeValue) {
		return withCodeValue.StatusCode
	}
	return 0
}
