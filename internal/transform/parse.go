// Package transform parses the --to_world matrix string and derives the
// camera basis from it.
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mitsuba-camgen/internal/mathutil"
)

// ErrTokenCount is returned when the transform does not split into exactly 16 values.
var ErrTokenCount = errors.New("transform: expected 16 space-separated values")

// TokenError reports a value that is not a valid floating-point number.
type TokenError struct {
	Index int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("transform: value %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

// Parse reads 16 values separated by single spaces into a row-major matrix,
// in the order Mitsuba lists the elements of a <matrix> tag.
// Consecutive spaces produce empty tokens and are rejected like any other
// malformed value.
func Parse(s string) (mathutil.Mat4, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 16 {
		return mathutil.Mat4{}, fmt.Errorf("%w, got %d", ErrTokenCount, len(parts))
	}

	var m mathutil.Mat4
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return mathutil.Mat4{}, &TokenError{Index: i, Token: p, Err: err}
		}
		m[i] = v
	}
	return m, nil
}
