package base64

// EncodedLen returns the length in bytes of the encoding of an input
// buffer of length n, including any padding.
func (c *Config) EncodedLen(n int) int {
	symbols := (n*8 + 5) / 6
	if c.padding.style == paddingNone {
		return symbols
	}
	return symbols + (3-n%3)%3*8/6
}

// DecodedLen returns the maximum length in bytes of the decoding of a
// buffer of n encoded bytes.
func (c *Config) DecodedLen(n int) int {
	if c.padding.style == paddingRequired {
		// padded length must be a multiple of 4
		return n / 4 * 3
	}
	return n * 6 / 8
}

// AppendEncode encodes src and appends the encoded symbols to dst,
// returning the extended buffer. Encoding never fails - src is
// arbitrary bytes.
//
// Input is processed in windows of 3 bytes, each unpacked into 4 six
// bit values. The final window is zero filled, the symbols it would
// produce beyond the real input are dropped and replaced by padding
// characters as the policy dictates.
func (c *Config) AppendEncode(dst, src []byte) []byte {
	remaining := (len(src)*8 + 5) / 6
	for i := 0; i < len(src); i += 3 {
		var b1, b2 byte
		if i+1 < len(src) {
			b1 = src[i+1]
		}
		if i+2 < len(src) {
			b2 = src[i+2]
		}
		packed := uint32(src[i])<<16 | uint32(b1)<<8 | uint32(b2)
		for shift := 18; shift >= 0 && remaining > 0; shift -= 6 {
			dst = append(dst, c.encodeByte(byte(packed>>uint(shift))&0x3f))
			remaining--
		}
	}
	if c.padding.style != paddingNone {
		for n := (3 - len(src)%3) % 3 * 8 / 6; n > 0; n-- {
			dst = append(dst, c.padding.char)
		}
	}
	return dst
}

// Encode encodes src into a fresh buffer.
func (c *Config) Encode(src []byte) []byte {
	return c.AppendEncode(make([]byte, 0, c.EncodedLen(len(src))), src)
}

// EncodeToString encodes src and returns the result as a string.
func (c *Config) EncodeToString(src []byte) string {
	return string(c.Encode(src))
}

// AppendDecode decodes src and appends the decoded bytes to dst,
// returning the extended buffer, or a DecodeError if src is not valid
// under the alphabet and padding policy. On error dst is returned
// unchanged in content - no partial output is appended.
//
// Symbols are processed in windows of 4, each packed into 3 bytes. The
// padding tail is ignored and the final window is zero filled instead;
// the spurious bytes this produces are dropped so the output holds
// exactly unpadded*6/8 bytes.
func (c *Config) AppendDecode(dst, src []byte) ([]byte, error) {
	unpadded, err := c.validateEncoded(src)
	if err != nil {
		return dst, err
	}
	remaining := unpadded * 6 / 8
	for i := 0; i < unpadded; i += 4 {
		var packed uint32
		for j := 0; j < 4; j++ {
			var v byte
			if i+j < unpadded {
				v = c.decodeByte(src[i+j])
			}
			packed = packed<<6 | uint32(v)
		}
		for shift := 16; shift >= 0 && remaining > 0; shift -= 8 {
			dst = append(dst, byte(packed>>uint(shift)))
			remaining--
		}
	}
	return dst, nil
}

// Decode decodes src into a fresh buffer.
func (c *Config) Decode(src []byte) ([]byte, error) {
	return c.AppendDecode(make([]byte, 0, c.DecodedLen(len(src))), src)
}

// DecodeString decodes the string s.
func (c *Config) DecodeString(s string) ([]byte, error) {
	return c.Decode([]byte(s))
}
