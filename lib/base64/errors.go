package base64

import "fmt"

// ConfigError is the class of errors returned by New when the alphabet
// definition is invalid. Use errors.As with a *ConfigError to match any
// of them, or with a pointer to the concrete type to get at the data.
type ConfigError interface {
	error
	configError()
}

// DecodeError is the class of errors returned when decoding an invalid
// buffer.
type DecodeError interface {
	error
	decodeError()
}

// OverlappingRangesError is returned by New when two alphabet ranges
// share at least one byte.
type OverlappingRangesError struct {
	First, Second Range
}

func (e OverlappingRangesError) Error() string {
	return fmt.Sprintf("overlapping ranges %v and %v", e.First, e.Second)
}

func (OverlappingRangesError) configError() {}

// PaddingCharInRangeError is returned by New when the padding character
// is also part of the alphabet.
type PaddingCharInRangeError struct {
	Char  byte
	Range Range
}

func (e PaddingCharInRangeError) Error() string {
	return fmt.Sprintf("padding character %q found in range %v", e.Char, e.Range)
}

func (PaddingCharInRangeError) configError() {}

// RangeSumError is returned by New when the ranges don't cover exactly
// 64 values.
type RangeSumError struct {
	Sum int
}

func (e RangeSumError) Error() string {
	return fmt.Sprintf("range lengths sum to %d, not 64", e.Sum)
}

func (RangeSumError) configError() {}

// InvalidCharacterError is returned by Decode when the buffer contains
// a byte outside the alphabet.
type InvalidCharacterError struct {
	Char byte
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

func (InvalidCharacterError) decodeError() {}

// InvalidLengthError is returned by Decode under a required padding
// policy when the buffer length is not a multiple of 4.
type InvalidLengthError struct {
	Length  int
	PadChar byte
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("length %d not a multiple of 4, padding with %q required", e.Length, e.PadChar)
}

func (InvalidLengthError) decodeError() {}

// PaddedLengthError is returned by Decode under an optional padding
// policy when padding is present but the buffer length is not a
// multiple of 4.
type PaddedLengthError struct {
	Length int
}

func (e PaddedLengthError) Error() string {
	return fmt.Sprintf("padding characters detected and length %d not a multiple of 4", e.Length)
}

func (PaddedLengthError) decodeError() {}

// ExcessPaddingError is returned by Decode when the buffer ends in 3 or
// more padding characters. A valid group carries at most 2.
type ExcessPaddingError struct {
	Count int
}

func (e ExcessPaddingError) Error() string {
	return fmt.Sprintf("too many padding characters: %d", e.Count)
}

func (ExcessPaddingError) decodeError() {}
