package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []int
		wantErr bool
	}{
		{"empty", "", []int{}, false},
		{"blank", "  \n\t ", []int{}, false},
		{"single", "42", []int{42}, false},
		{"commas", "9,3,7,1", []int{9, 3, 7, 1}, false},
		{"commas with spaces", "9, 3, 7, 1", []int{9, 3, 7, 1}, false},
		{"newlines", "2\n3\r\n5\n", []int{2, 3, 5}, false},
		{"semicolons", "1;2;3", []int{1, 2, 3}, false},
		{"negative", "-4,0,4", []int{-4, 0, 4}, false},
		{"trailing separator", "1,2,", []int{1, 2}, false},
		{"not a number", "1,two,3", nil, true},
		{"float", "1.5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ERROR_BAD_INPUT_VALUES, StatusCodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusCodeOf(t *testing.T) {
	inner := errors.New("boom")

	assert.Equal(t, 0, StatusCodeOf(nil))
	assert.Equal(t, 0, StatusCodeOf(inner))
	assert.Equal(t, ERROR_BAD_PATTERN, StatusCodeOf(&ErrorWithCode{StatusCode: ERROR_BAD_PATTERN, InternalError: inner}))
	assert.Equal(t, ERROR_NO_SCENARIO, StatusCodeOf(ErrorWithCode{StatusCode: ERROR_NO_SCENARIO, InternalError: inner}))

	wrapped := fmt.Errorf("outer: %w", &ErrorWithCode{StatusCode: ERROR_EMPTY_LIST, InternalError: inner})
	assert.Equal(t, ERROR_EMPTY_LIST, StatusCodeOf(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}
