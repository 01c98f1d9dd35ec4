// Package buffer implements the owned surface of the game codec: a byte
// slice with independent read and write cursors
//
// bytes.Buffer was not an option here since it only ever appends and only
// ever consumes from the front, while game packets are assembled by
// skipping over a length slot, writing the body, then seeking back, and
// are picked apart with the read cursor while the write cursor stays put
//
// the buffer owns its storage and is sized up front to the message being
// built, so running off either end is a bug in the packet code, not a
// runtime condition, and the primitives panic accordingly. ReadBytes is
// the one exception, see its doc
package buffer

// Buffer is the operation surface shared by the plain and memory-mapped
// cursor buffers.
type Buffer interface {
	Bytes() []byte
	Len() int
	ReadPos() int
	WritePos() int
	SetReadPos(int) error
	SetWritePos(int) error
	Clear()
	Skip(int)

	WriteBytes([]byte)
	ReadBytes(*ByteBuffer, int) error
	WriteBytesReversedAdd(*ByteBuffer)

	WriteBool(bool)
	WriteU8(uint8)
	WriteI8(int8)
	WriteI8Sub(int8)
	WriteI8Add(int8)
	WriteI8Neg(int8)
	WriteU16(uint16)
	WriteI16(int16)
	WriteU16LE(uint16)
	WriteI16LE(int16)
	WriteU16Smart(uint16)
	WriteI16Add(int16)
	WriteI16LEAdd(int16)
	WriteU32(uint32)
	WriteI32(int32)
	WriteU32LE(uint32)
	WriteI32LE(int32)
	WriteI32ME(int32)
	WriteI32IME(int32)
	WriteU64(uint64)
	WriteI64(int64)
	WriteStringNullTerminated(string)

	ReadBool() bool
	ReadU8() uint8
	ReadI8() int8
	ReadU16() uint16
	ReadI16() int16
	ReadU16LE() uint16
	ReadI16LE() int16
	ReadU16Smart() uint16
	ReadU16Add() uint16
	ReadI16Add() int16
	ReadU16AddLE() uint16
	ReadI16AddLE() int16
	ReadU32() uint32
	ReadI32() int32
	ReadU32LE() uint32
	ReadI32LE() int32
	ReadU32ME() uint32
	ReadI32ME() int32
	ReadU32IME() uint32
	ReadI32IME() int32
	ReadU64() uint64
	ReadI64() int64
	ReadString() string
}
