// Package base64 implements base64 encoding and decoding with
// configurable alphabets.
//
// Unlike encoding/base64, which hard-codes its symbol tables, this
// package builds the 64-symbol alphabet from an ordered list of
// inclusive byte ranges. The order of the ranges defines the value
// assignment: the first range covers values 0..len-1, the next range
// continues from there, and so on. The padding policy (required,
// optional or none) is part of the configuration too.
//
// The usual alphabets are available as presets:
//
//	cfg := base64.Standard() // A-Z a-z 0-9 + /  optional '='
//	cfg := base64.URL()      // A-Z a-z 0-9 - _  optional '='
//	cfg := base64.MIME()     // A-Z a-z 0-9 + /  required '='
//
// A Config is validated once when constructed and is immutable
// afterwards, so it can be shared between goroutines without locking.
package base64
