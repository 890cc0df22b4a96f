package domain

import "errors"

var (
	// ErrInvalidRange start date is after end date
	ErrInvalidRange = errors.New("domain: start date is after end date")

	// ErrStockExhausted car stock cannot go below zero
	ErrStockExhausted = errors.New("domain: car stock exhausted")

	// ErrLicenseInvalid driving license does not cover the whole booking range
	ErrLicenseInvalid = errors.New("domain: driving license is not valid for the booking range")
)
