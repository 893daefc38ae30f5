package base64

import "fmt"

// Range is one contiguous, inclusive slice of the alphabet.
type Range struct {
	Low, High byte
}

// Contains returns true if b lies inside the range.
func (r Range) Contains(b byte) bool {
	return r.Low <= b && b <= r.High
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int {
	if r.Low > r.High {
		return 0
	}
	return int(r.High) - int(r.Low) + 1
}

// String returns the range formatted like 'A'-'Z'.
func (r Range) String() string {
	return fmt.Sprintf("%q-%q", r.Low, r.High)
}

// overlaps returns true if the two ranges share at least one byte.
func (r Range) overlaps(other Range) bool {
	return !(r.High < other.Low || r.Low > other.High)
}

type paddingStyle byte

const (
	paddingNone paddingStyle = iota
	paddingRequired
	paddingOptional
)

// Padding is the padding policy of a Config. Use RequiredPadding,
// OptionalPadding or NoPadding to make one.
type Padding struct {
	style paddingStyle
	char  byte
}

// NoPadding is the policy for alphabets which never pad.
var NoPadding = Padding{style: paddingNone}

// RequiredPadding returns a policy where encoded buffers must be padded
// with char to a multiple of 4 symbols.
func RequiredPadding(char byte) Padding {
	return Padding{style: paddingRequired, char: char}
}

// OptionalPadding returns a policy where padding with char may be
// present or omitted.
func OptionalPadding(char byte) Padding {
	return Padding{style: paddingOptional, char: char}
}

// String returns the policy formatted like `optional '='`.
func (p Padding) String() string {
	switch p.style {
	case paddingRequired:
		return fmt.Sprintf("required %q", p.char)
	case paddingOptional:
		return fmt.Sprintf("optional %q", p.char)
	}
	return "none"
}

// Config is a validated base64 alphabet plus padding policy. The zero
// value is not usable - get one from New or a preset.
type Config struct {
	ranges  []Range
	padding Padding
}

// New makes a Config from an ordered list of ranges and a padding
// policy. The order of the ranges defines the value assignment: the
// first range maps values 0..len-1, the next continues from there.
//
// New fails with a ConfigError if any two ranges overlap, if the
// padding character lies inside a range, or if the ranges don't cover
// exactly 64 values.
func New(ranges []Range, padding Padding) (*Config, error) {
	c := &Config{
		ranges:  append([]Range(nil), ranges...),
		padding: padding,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func mustNew(ranges []Range, padding Padding) *Config {
	c, err := New(ranges, padding)
	if err != nil {
		panic(err)
	}
	return c
}

// Standard returns the RFC 4648 alphabet A-Z a-z 0-9 + / with optional
// '=' padding.
func Standard() *Config {
	return mustNew([]Range{
		{'A', 'Z'},
		{'a', 'z'},
		{'0', '9'},
		{'+', '+'},
		{'/', '/'},
	}, OptionalPadding('='))
}

// URL returns the URL safe alphabet A-Z a-z 0-9 - _ with optional '='
// padding.
func URL() *Config {
	return mustNew([]Range{
		{'A', 'Z'},
		{'a', 'z'},
		{'0', '9'},
		{'-', '-'},
		{'_', '_'},
	}, OptionalPadding('='))
}

// MIME returns the RFC 4648 alphabet with '=' padding required as in
// MIME bodies.
func MIME() *Config {
	return mustNew([]Range{
		{'A', 'Z'},
		{'a', 'z'},
		{'0', '9'},
		{'+', '+'},
		{'/', '/'},
	}, RequiredPadding('='))
}

// Ranges returns a copy of the configured ranges in value order.
func (c *Config) Ranges() []Range {
	return append([]Range(nil), c.ranges...)
}

// Padding returns the configured padding policy.
func (c *Config) Padding() Padding {
	return c.padding
}

// validate checks the alphabet invariants, first overlap on any pair of
// ranges, then the padding character, then total coverage.
func (c *Config) validate() error {
	for i := 0; i < len(c.ranges); i++ {
		for j := i + 1; j < len(c.ranges); j++ {
			if c.ranges[i].overlaps(c.ranges[j]) {
				return OverlappingRangesError{First: c.ranges[i], Second: c.ranges[j]}
			}
		}
	}
	if c.padding.style != paddingNone {
		for _, r := range c.ranges {
			if r.Contains(c.padding.char) {
				return PaddingCharInRangeError{Char: c.padding.char, Range: r}
			}
		}
	}
	sum := 0
	for _, r := range c.ranges {
		sum += r.Len()
	}
	if sum != 64 {
		return RangeSumError{Sum: sum}
	}
	return nil
}

// inAlphabet returns true if b belongs to one of the configured ranges.
func (c *Config) inAlphabet(b byte) bool {
	for _, r := range c.ranges {
		if r.Contains(b) {
			return true
		}
	}
	return false
}

// decodeByte maps an alphabet byte to its 6-bit value.
//
// The caller must have validated that b is in the alphabet. A byte
// outside every range maps to 0, which would silently corrupt output if
// this were reachable from unvalidated input.
func (c *Config) decodeByte(b byte) byte {
	var offset byte
	for _, r := range c.ranges {
		if r.Contains(b) {
			return b - r.Low + offset
		}
		offset += byte(r.Len())
	}
	return 0
}

// encodeByte maps a 6-bit value to its alphabet byte.
//
// The caller must pass a value below 64. Anything else maps to 0.
func (c *Config) encodeByte(v byte) byte {
	var offset byte
	for _, r := range c.ranges {
		b := v + r.Low - offset
		if r.Contains(b) {
			return b
		}
		offset += byte(r.Len())
	}
	return 0
}
