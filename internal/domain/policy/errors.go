package policy

import "errors"

var (
	ErrPolicyNotFound         = errors.New("late deduction policy not found")
	ErrInvalidDeductionMethod = errors.New("invalid deduction method")
)
