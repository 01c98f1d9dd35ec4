package buffer

import (
	"encoding/binary"
	"fmt"

	"github.com/gielinor/runebuf"
)

// ByteBuffer is an owned byte slice with independent read and write
// cursors. It is pre-sized to the needs of a known message, so primitive
// operations treat a bounds violation as a programming error and panic;
// only ReadBytes reports end-of-data as an ordinary error. A ByteBuffer is
// not safe for concurrent use.
type ByteBuffer struct {
	readPos  int
	writePos int
	buffer   []byte
}

// New creates a ByteBuffer over a zero-filled slice of the specified size,
// both cursors at 0.
func New(n int) *ByteBuffer {
	return &ByteBuffer{
		buffer: make([]byte, n),
	}
}

// NewSlice creates a ByteBuffer adopting the passed slice as its storage,
// both cursors at 0.
func NewSlice(buffer []byte) *ByteBuffer {
	return &ByteBuffer{
		buffer: buffer,
	}
}

// ReadPos returns the current read cursor.
func (b *ByteBuffer) ReadPos() int { return b.readPos }

// WritePos returns the current write cursor.
func (b *ByteBuffer) WritePos() int { return b.writePos }

// SetReadPos sets the read cursor to the specified position.
func (b *ByteBuffer) SetReadPos(position int) error {
	if position < 0 || position > len(b.buffer) {
		return runebuf.ErrOutOfRange
	}
	b.readPos = position
	return nil
}

// SetWritePos sets the write cursor to the specified position.
func (b *ByteBuffer) SetWritePos(position int) error {
	if position < 0 || position > len(b.buffer) {
		return runebuf.ErrOutOfRange
	}
	b.writePos = position
	return nil
}

// Len returns the size of the underlying storage.
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Bytes returns the internal byte array of the ByteBuffer.
func (b *ByteBuffer) Bytes() []byte { return b.buffer }

// Clear resets both cursors to 0. Storage contents are unchanged.
func (b *ByteBuffer) Clear() {
	b.readPos = 0
	b.writePos = 0
}

// Skip advances both cursors by n, typically to reserve space that will be
// filled in later.
func (b *ByteBuffer) Skip(n int) {
	b.readPos += n
	b.writePos += n
}

// writeSlice reserves n bytes at the write cursor and returns them for the
// caller to fill. Panics if the storage is too small.
func (b *ByteBuffer) writeSlice(n int, what string) []byte {
	if b.writePos+n > len(b.buffer) {
		panic(fmt.Sprintf("failed writing %d bytes for %s: write position %d, buffer length %d",
			n, what, b.writePos, len(b.buffer)))
	}
	p := b.buffer[b.writePos : b.writePos+n]
	b.writePos += n
	return p
}

// readSlice consumes n bytes at the read cursor. Panics if fewer remain.
func (b *ByteBuffer) readSlice(n int, what string) []byte {
	if b.readPos+n > len(b.buffer) {
		panic(fmt.Sprintf("failed reading %d bytes for %s: read position %d, buffer length %d",
			n, what, b.readPos, len(b.buffer)))
	}
	p := b.buffer[b.readPos : b.readPos+n]
	b.readPos += n
	return p
}

// WriteBytes copies data into storage at the write cursor.
func (b *ByteBuffer) WriteBytes(data []byte) {
	copy(b.writeSlice(len(data), "bytes"), data)
}

// ReadBytes copies n bytes at the read cursor into dst through dst's own
// write path. Unlike the primitive reads it reports running out of data as
// an error, since it is the operation callers probe bounds with.
func (b *ByteBuffer) ReadBytes(dst *ByteBuffer, n int) error {
	if b.readPos+n > len(b.buffer) {
		return runebuf.ErrEndOfData
	}
	dst.WriteBytes(b.buffer[b.readPos : b.readPos+n])
	b.readPos += n
	return nil
}

// WriteBool writes a bool as a single byte, 1 for true and 0 for false.
func (b *ByteBuffer) WriteBool(v bool) {
	if v {
		b.WriteU8(1)
	} else {
		b.WriteU8(0)
	}
}

// ReadBool reads a single byte as a bool. Any nonzero byte is true.
func (b *ByteBuffer) ReadBool() bool {
	return b.readSlice(1, "bool")[0] != 0
}

// WriteU8 writes an unsigned byte.
func (b *ByteBuffer) WriteU8(v uint8) {
	b.writeSlice(1, "u8")[0] = v
}

// ReadU8 reads an unsigned byte.
func (b *ByteBuffer) ReadU8() uint8 {
	return b.readSlice(1, "u8")[0]
}

// WriteI8 writes a signed byte.
func (b *ByteBuffer) WriteI8(v int8) {
	b.writeSlice(1, "i8")[0] = byte(v)
}

// ReadI8 reads a signed byte.
func (b *ByteBuffer) ReadI8() int8 {
	return int8(b.readSlice(1, "i8")[0])
}

// WriteI8Sub writes 128 minus the value as a single byte. The transform is
// one-way; no read reverses it.
func (b *ByteBuffer) WriteI8Sub(v int8) {
	b.writeSlice(1, "i8 sub")[0] = runebuf.SubByte(byte(v))
}

// WriteI8Add writes the value offset by 128 as a single byte. It is the
// building block of the 16-bit add encodings; reads happen at that level.
func (b *ByteBuffer) WriteI8Add(v int8) {
	b.writeSlice(1, "i8 add")[0] = runebuf.AddByte(byte(v))
}

// WriteI8Neg writes the negated value as a single byte.
func (b *ByteBuffer) WriteI8Neg(v int8) {
	b.writeSlice(1, "i8 neg")[0] = runebuf.NegByte(byte(v))
}

// WriteU16 writes an unsigned short, big endian.
func (b *ByteBuffer) WriteU16(v uint16) {
	binary.BigEndian.PutUint16(b.writeSlice(2, "u16"), v)
}

// ReadU16 reads an unsigned short, big endian.
func (b *ByteBuffer) ReadU16() uint16 {
	return binary.BigEndian.Uint16(b.readSlice(2, "u16"))
}

// WriteI16 writes a signed short, big endian.
func (b *ByteBuffer) WriteI16(v int16) { b.WriteU16(uint16(v)) }

// ReadI16 reads a signed short, big endian.
func (b *ByteBuffer) ReadI16() int16 { return int16(b.ReadU16()) }

// WriteU16LE writes an unsigned short, little endian.
func (b *ByteBuffer) WriteU16LE(v uint16) {
	binary.LittleEndian.PutUint16(b.writeSlice(2, "u16 le"), v)
}

// ReadU16LE reads an unsigned short, little endian.
func (b *ByteBuffer) ReadU16LE() uint16 {
	return binary.LittleEndian.Uint16(b.readSlice(2, "u16 le"))
}

// WriteI16LE writes a signed short, little endian.
func (b *ByteBuffer) WriteI16LE(v int16) { b.WriteU16LE(uint16(v)) }

// ReadI16LE reads a signed short, little endian.
func (b *ByteBuffer) ReadI16LE() int16 { return int16(b.ReadU16LE()) }

// WriteU16Smart writes a value on the 1-or-2 byte smart form. Values above
// runebuf.SmartMax do not fit the representation and panic.
func (b *ByteBuffer) WriteU16Smart(v uint16) {
	n, err := runebuf.SmartLen(v)
	if err != nil {
		panic(fmt.Sprintf("value %d is too big for a u16 smart", v))
	}
	runebuf.PutU16Smart(b.writeSlice(n, "u16 smart"), v)
}

// ReadU16Smart reads a 1-or-2 byte smart value. The high bit of the first
// byte selects the width.
func (b *ByteBuffer) ReadU16Smart() uint16 {
	if b.readPos >= len(b.buffer) {
		panic(fmt.Sprintf("failed reading 1 byte for u16 smart: read position %d, buffer length %d",
			b.readPos, len(b.buffer)))
	}
	n := runebuf.SmartLenFirst(b.buffer[b.readPos])
	return runebuf.U16Smart(b.readSlice(n, "u16 smart"))
}

// WriteI16Add writes a signed short, big endian, with the low byte offset
// by 128.
func (b *ByteBuffer) WriteI16Add(v int16) {
	runebuf.PutU16Add(b.writeSlice(2, "i16 add"), uint16(v))
}

// ReadU16Add reads an unsigned short, big endian, with the low byte offset
// by 128.
func (b *ByteBuffer) ReadU16Add() uint16 {
	return runebuf.U16Add(b.readSlice(2, "u16 add"))
}

// ReadI16Add reads a signed short, big endian, with the low byte offset by
// 128.
func (b *ByteBuffer) ReadI16Add() int16 { return int16(b.ReadU16Add()) }

// WriteI16LEAdd writes a signed short with the offset low byte first and
// the high byte second.
func (b *ByteBuffer) WriteI16LEAdd(v int16) {
	runebuf.PutU16AddLE(b.writeSlice(2, "i16 le add"), uint16(v))
}

// ReadU16AddLE reads an unsigned short with the offset low byte first and
// the high byte second.
func (b *ByteBuffer) ReadU16AddLE() uint16 {
	return runebuf.U16AddLE(b.readSlice(2, "u16 add le"))
}

// ReadI16AddLE reads the signed form of ReadU16AddLE.
func (b *ByteBuffer) ReadI16AddLE() int16 { return int16(b.ReadU16AddLE()) }

// WriteU32 writes an unsigned dword, big endian.
func (b *ByteBuffer) WriteU32(v uint32) {
	binary.BigEndian.PutUint32(b.writeSlice(4, "u32"), v)
}

// ReadU32 reads an unsigned dword, big endian.
func (b *ByteBuffer) ReadU32() uint32 {
	return binary.BigEndian.Uint32(b.readSlice(4, "u32"))
}

// WriteI32 writes a signed dword, big endian.
func (b *ByteBuffer) WriteI32(v int32) { b.WriteU32(uint32(v)) }

// ReadI32 reads a signed dword, big endian.
func (b *ByteBuffer) ReadI32() int32 { return int32(b.ReadU32()) }

// WriteU32LE writes an unsigned dword, little endian.
func (b *ByteBuffer) WriteU32LE(v uint32) {
	binary.LittleEndian.PutUint32(b.writeSlice(4, "u32 le"), v)
}

// ReadU32LE reads an unsigned dword, little endian.
func (b *ByteBuffer) ReadU32LE() uint32 {
	return binary.LittleEndian.Uint32(b.readSlice(4, "u32 le"))
}

// WriteI32LE writes a signed dword, little endian.
func (b *ByteBuffer) WriteI32LE(v int32) { b.WriteU32LE(uint32(v)) }

// ReadI32LE reads a signed dword, little endian.
func (b *ByteBuffer) ReadI32LE() int32 { return int32(b.ReadU32LE()) }

// WriteI32ME writes a signed dword in middle endian: the high half-word
// little endian, then the low half-word little endian.
func (b *ByteBuffer) WriteI32ME(v int32) {
	runebuf.PutU32ME(b.writeSlice(4, "i32 me"), uint32(v))
}

// ReadU32ME reads an unsigned dword in middle endian.
func (b *ByteBuffer) ReadU32ME() uint32 {
	return runebuf.U32ME(b.readSlice(4, "u32 me"))
}

// ReadI32ME reads a signed dword in middle endian.
func (b *ByteBuffer) ReadI32ME() int32 { return int32(b.ReadU32ME()) }

// WriteI32IME writes a signed dword in inverse middle endian: the low
// half-word big endian, then the high half-word big endian.
func (b *ByteBuffer) WriteI32IME(v int32) {
	runebuf.PutU32IME(b.writeSlice(4, "i32 ime"), uint32(v))
}

// ReadU32IME reads an unsigned dword in inverse middle endian.
func (b *ByteBuffer) ReadU32IME() uint32 {
	return runebuf.U32IME(b.readSlice(4, "u32 ime"))
}

// ReadI32IME reads a signed dword in inverse middle endian.
func (b *ByteBuffer) ReadI32IME() int32 { return int32(b.ReadU32IME()) }

// WriteU64 writes an unsigned qword, big endian.
func (b *ByteBuffer) WriteU64(v uint64) {
	binary.BigEndian.PutUint64(b.writeSlice(8, "u64"), v)
}

// ReadU64 reads an unsigned qword, big endian.
func (b *ByteBuffer) ReadU64() uint64 {
	return binary.BigEndian.Uint64(b.readSlice(8, "u64"))
}

// WriteI64 writes a signed qword, big endian.
func (b *ByteBuffer) WriteI64(v int64) { b.WriteU64(uint64(v)) }

// ReadI64 reads a signed qword, big endian.
func (b *ByteBuffer) ReadI64() int64 { return int64(b.ReadU64()) }

// WriteStringNullTerminated writes the legacy single-byte encoding of s
// followed by one zero byte. Text with no legacy encoding panics.
func (b *ByteBuffer) WriteStringNullTerminated(s string) {
	p, err := runebuf.EncodeText(s)
	if err != nil {
		panic(err)
	}
	b.WriteBytes(p)
	b.WriteU8(0)
}

// ReadString reads bytes up to the first zero byte and decodes them as
// legacy text, leaving the read cursor just past the terminator. Text that
// ends at the end of storage without a terminator is accepted. Bytes with
// no legacy decoding panic.
func (b *ByteBuffer) ReadString() string {
	end := b.readPos
	for end < len(b.buffer) && b.buffer[end] != 0 {
		end++
	}
	s, err := runebuf.DecodeText(b.buffer[b.readPos:end])
	if err != nil {
		panic(err)
	}
	if end < len(b.buffer) {
		end++ // consume the terminator
	}
	b.readPos = end
	return s
}

// WriteBytesReversedAdd emits src's pending region, the bytes between its
// read and write cursors, in reverse order with every byte offset by 128.
// src's cursors are left untouched.
func (b *ByteBuffer) WriteBytesReversedAdd(src *ByteBuffer) {
	pending := src.buffer[src.readPos:src.writePos]
	runebuf.ReverseAdd(b.writeSlice(len(pending), "bytes reversed add"), pending)
}
