package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func isValueSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// ParseValues reads integers separated by commas, semicolons or whitespace.
// An empty or blank text yields an empty slice.
func ParseValues(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, isValueSeparator)
	values := make([]int, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, &ErrorWithCode{
				StatusCode:    ERROR_BAD_INPUT_VALUES,
				InternalError: fmt.Errorf("value #%v '%v' is not an integer: %w", i+1, field, err),
			}
		}
		values = append(values, value)
	}
	return values, nil
}
