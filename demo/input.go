package demo

import (
	"errors"
	"fmt"
	"github.com/avast/retry-go"
	"golang.org/x/net/html/charset"
	"io/fs"
	"listops/util"
	"os"
	"strings"
	"time"
)

const (
	READ_ATTEMPTS    = 3
	READ_RETRY_DELAY = 10 * time.Millisecond
)

// LoadValues reads the integers of an input file. The file encoding is detected from its
// content, so UTF-16 files with a byte order mark and Latin-1 files are accepted.
func LoadValues(inputPath string) ([]int, error) {
	var content []byte
	err := retry.Do(
		func() error {
			var readErr error
			content, readErr = os.ReadFile(inputPath)
			return readErr
		},
		retry.Attempts(READ_ATTEMPTS),
		retry.Delay(READ_RETRY_DELAY),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, fs.ErrNotExist)
		}),
	)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_PATH,
			InternalError: fmt.Errorf("failed to read input at '%v': %w", inputPath, err),
		}
	}

	text, err := decodeText(content)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_VALUES,
			InternalError: fmt.Errorf("failed to decode input at '%v': %w", inputPath, err),
		}
	}

	values, err := util.ParseValues(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input at '%v': %w", inputPath, err)
	}
	return values, nil
}

func decodeText(content []byte) (string, error) {
	encoding, _, _ := charset.DetermineEncoding(content, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(decodedBytes), "\uFEFF"), nil
}
