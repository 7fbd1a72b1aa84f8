// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tokenize splits a command line into whitespace-delimited tokens.
//
// There are no quoting or escaping rules: a token is a maximal run of
// bytes that are not ASCII whitespace.
package tokenize

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInputSize is the largest input [Split] accepts, in bytes.
const MaxInputSize = 1 << 20

var (
	// ErrTooLarge indicates that the input exceeds [MaxInputSize].
	ErrTooLarge = errors.New("tokenize: input too large")

	// ErrInconsistent indicates that the counting pass and the
	// populating pass disagree on the number of tokens.
	ErrInconsistent = errors.New("tokenize: token count mismatch")
)

// isSpace matches the bytes C's isspace accepts in the "C" locale.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Count returns the number of tokens in s.
func Count(s string) int {
	var (
		count   = 0
		inToken = false
	)
	for idx := 0; idx < len(s); idx++ {
		if isSpace(s[idx]) {
			inToken = false
			continue
		}
		if !inToken {
			count++
			inToken = true
		}
	}
	return count
}

// Split returns the tokens of s in order.
//
// An empty or whitespace-only s yields a nil slice and a nil error. All
// the returned tokens share a single private copy of s, so retaining any
// of them does not pin the caller's string.
func Split(s string) ([]string, error) {
	if len(s) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, len(s), MaxInputSize)
	}
	count := Count(s)
	if count == 0 {
		return nil, nil
	}
	return populate(strings.Clone(s), count)
}

// populate collects exactly count tokens from buf.
func populate(buf string, count int) ([]string, error) {
	tokens := make([]string, 0, count)
	off := 0
	for len(tokens) < count {
		for off < len(buf) && isSpace(buf[off]) {
			off++
		}
		if off >= len(buf) {
			break
		}
		start := off
		for off < len(buf) && !isSpace(buf[off]) {
			off++
		}
		tokens = append(tokens, buf[start:off])
	}
	if len(tokens) != count {
		return nil, fmt.Errorf("%w: found %d, expected %d", ErrInconsistent, len(tokens), count)
	}
	return tokens, nil
}
