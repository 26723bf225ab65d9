// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "fmt"

// CountOp compares a quiz's question count in the browse filter
type CountOp string

const (
	AtLeast CountOp = ">="
	AtMost  CountOp = "<="
	Exactly CountOp = "="
)

// ParseCountOp accepts only the three known operators
func ParseCountOp(s string) (CountOp, error) {
	switch op := CountOp(s); op {
	case AtLeast, AtMost, Exactly:
		return op, nil
	}
	return "", fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, s)
}

type CountFilter struct {
	Op CountOp
	N  int
}

// QuizFilter narrows FindQuizzesVisibleTo. The zero value lists everything
// visible.
type QuizFilter struct {
	Search string       // substring of the title
	Count  *CountFilter // question count condition
}

func (f QuizFilter) Validate() error {
	if f.Count == nil {
		return nil
	}
	if _, err := ParseCountOp(string(f.Count.Op)); err != nil {
		return err
	}
	if f.Count.N < 0 {
		return fmt.Errorf("%w: question count must not be negative", ErrInvalidFilter)
	}
	return nil
}
