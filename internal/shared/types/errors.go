package types

import "errors"

var (
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrMissingAccountNumber  = errors.New("ACCOUNT_NUMBER is required (or enable RESOLVE_ACCOUNT_ID)")
	ErrMalformedCostResponse = errors.New("malformed Cost Explorer response")
	ErrDispatchFailed        = errors.New("notification dispatch failed")
)
