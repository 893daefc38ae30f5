package base64

// countTrailingPadding counts consecutive padding characters at the end
// of buf. Only the last 3 positions are examined - a valid group of 4
// carries at most 2 padding characters, so a count of 3 is already an
// error and looking further back would only misreport it.
func (c *Config) countTrailingPadding(buf []byte) int {
	if c.padding.style == paddingNone {
		return 0
	}
	n := 0
	for i := len(buf) - 1; i >= 0 && n < 3; i-- {
		if buf[i] != c.padding.char {
			break
		}
		n++
	}
	return n
}

// validateEncoded checks buf against the alphabet and padding policy
// and returns the number of meaningful (non padding) symbols.
//
// The checks run in a fixed order so error precedence is deterministic:
// padding count first, then character membership scanning from the back
// and skipping the padding tail, then the length rules of the policy.
func (c *Config) validateEncoded(buf []byte) (int, error) {
	pad := c.countTrailingPadding(buf)
	if pad >= 3 {
		return 0, ExcessPaddingError{Count: pad}
	}
	for i := len(buf) - 1 - pad; i >= 0; i-- {
		if !c.inAlphabet(buf[i]) {
			return 0, InvalidCharacterError{Char: buf[i]}
		}
	}
	length := len(buf)
	if c.padding.style == paddingRequired && length%4 != 0 {
		return 0, InvalidLengthError{Length: length, PadChar: c.padding.char}
	}
	if c.padding.style == paddingOptional && pad != 0 && length%4 != 0 {
		return 0, PaddedLengthError{Length: length}
	}
	return length - pad, nil
}
