package runebuf

import "encoding/binary"

// The transforms below are the game-specific half of the wire format.
// Plain big/little endian integers go through encoding/binary at the call
// sites; everything that offsets, negates, reorders or varies in width
// lives here so that the buffer and stream surfaces cannot drift apart.

// SmartMax is the largest value representable by the 1-or-2 byte smart
// encoding.
const SmartMax = 32767

// smartWideFlag is added to a value encoded on the wide form; it sets the
// high bit of the first byte, which is how decoders tell the widths apart.
const smartWideFlag = 32768

// AddByte transforms a byte for the wire by adding 128, wrapping.
func AddByte(b byte) byte { return b + 128 }

// SubByte transforms a byte for the wire as 128 minus the byte, wrapping.
// This transform is one-way: the protocol defines no read that reverses it
// on its own.
func SubByte(b byte) byte { return 128 - b }

// NegByte transforms a byte for the wire by negating it, wrapping.
func NegByte(b byte) byte { return -b }

// PutU16Add encodes v into p[0:2] as a big-endian short whose low byte is
// offset by 128.
func PutU16Add(p []byte, v uint16) {
	p[0] = byte(v >> 8)
	p[1] = AddByte(byte(v))
}

// U16Add decodes a big-endian short whose low byte is offset by 128 from
// p[0:2].
func U16Add(p []byte) uint16 {
	return uint16(p[0])<<8 | uint16(p[1]-128)
}

// PutU16AddLE encodes v into p[0:2] with the offset low byte first and the
// high byte second.
func PutU16AddLE(p []byte, v uint16) {
	p[0] = AddByte(byte(v))
	p[1] = byte(v >> 8)
}

// U16AddLE decodes the little-endian form of the offset short from p[0:2].
func U16AddLE(p []byte) uint16 {
	return uint16(p[0]-128) | uint16(p[1])<<8
}

// PutU32ME encodes v into p[0:4] in middle endian: the high 16 bits as a
// little-endian half-word, then the low 16 bits as a little-endian
// half-word.
func PutU32ME(p []byte, v uint32) {
	binary.LittleEndian.PutUint16(p[0:2], uint16(v>>16))
	binary.LittleEndian.PutUint16(p[2:4], uint16(v))
}

// U32ME decodes a middle endian dword from p[0:4].
func U32ME(p []byte) uint32 {
	return uint32(binary.LittleEndian.Uint16(p[0:2]))<<16 |
		uint32(binary.LittleEndian.Uint16(p[2:4]))
}

// PutU32IME encodes v into p[0:4] in inverse middle endian: the low 16
// bits as a big-endian half-word, then the high 16 bits as a big-endian
// half-word.
func PutU32IME(p []byte, v uint32) {
	binary.BigEndian.PutUint16(p[0:2], uint16(v))
	binary.BigEndian.PutUint16(p[2:4], uint16(v>>16))
}

// U32IME decodes an inverse middle endian dword from p[0:4].
func U32IME(p []byte) uint32 {
	return uint32(binary.BigEndian.Uint16(p[0:2])) |
		uint32(binary.BigEndian.Uint16(p[2:4]))<<16
}

// SmartLen reports how many bytes the smart encoding of v occupies, or an
// error if v is too large for the representation.
func SmartLen(v uint16) (int, error) {
	switch {
	case v <= 127:
		return 1, nil
	case v <= SmartMax:
		return 2, nil
	default:
		return 0, ErrSmartOutOfRange
	}
}

// PutU16Smart encodes v into p on the 1-or-2 byte smart form and returns
// the number of bytes written. p must have room for SmartLen(v) bytes.
func PutU16Smart(p []byte, v uint16) (int, error) {
	n, err := SmartLen(v)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		p[0] = byte(v)
		return 1, nil
	}
	binary.BigEndian.PutUint16(p, v+smartWideFlag)
	return 2, nil
}

// SmartLenFirst reports the total width of a smart value from its first
// byte: 1 when the high bit is clear, 2 when it is set.
func SmartLenFirst(first byte) int {
	if first < 128 {
		return 1
	}
	return 2
}

// U16Smart decodes a smart value from p, which must hold exactly the
// SmartLenFirst(p[0]) bytes of the encoding.
func U16Smart(p []byte) uint16 {
	if len(p) == 1 {
		return uint16(p[0])
	}
	return binary.BigEndian.Uint16(p) - smartWideFlag
}

// ReverseAdd writes src into dst in reverse order with every byte offset
// by 128. dst must be at least len(src) bytes.
func ReverseAdd(dst, src []byte) {
	for i, j := 0, len(src)-1; j >= 0; i, j = i+1, j-1 {
		dst[i] = AddByte(src[j])
	}
}
