package stream

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/gielinor/runebuf"
)

// Writer encodes game wire primitives onto any io.Writer. Failures of the
// sink, a closed socket, a full disk, come back as ordinary errors; the
// out-of-range conditions that panic on the owned buffer surface are
// reported here too.
type Writer struct {
	w       io.Writer
	scratch [8]byte
}

// NewWriter returns a Writer encoding onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(p []byte, what string) error {
	if _, err := w.w.Write(p); err != nil {
		return errors.Wrapf(err, "write %s", what)
	}
	return nil
}

// WriteBytes copies p to the sink.
func (w *Writer) WriteBytes(p []byte) error {
	return w.write(p, "bytes")
}

// WriteBool writes a bool as a single byte, 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteU8(1)
	}
	return w.WriteU8(0)
}

// WriteU8 writes an unsigned byte.
func (w *Writer) WriteU8(v uint8) error {
	w.scratch[0] = v
	return w.write(w.scratch[:1], "u8")
}

// WriteI8 writes a signed byte.
func (w *Writer) WriteI8(v int8) error {
	w.scratch[0] = byte(v)
	return w.write(w.scratch[:1], "i8")
}

// WriteI8Sub writes 128 minus the value as a single byte. The transform is
// one-way; no read reverses it.
func (w *Writer) WriteI8Sub(v int8) error {
	w.scratch[0] = runebuf.SubByte(byte(v))
	return w.write(w.scratch[:1], "i8 sub")
}

// WriteI8Add writes the value offset by 128 as a single byte.
func (w *Writer) WriteI8Add(v int8) error {
	w.scratch[0] = runebuf.AddByte(byte(v))
	return w.write(w.scratch[:1], "i8 add")
}

// WriteI8Neg writes the negated value as a single byte.
func (w *Writer) WriteI8Neg(v int8) error {
	w.scratch[0] = runebuf.NegByte(byte(v))
	return w.write(w.scratch[:1], "i8 neg")
}

// WriteU16 writes an unsigned short, big endian.
func (w *Writer) WriteU16(v uint16) error {
	binary.BigEndian.PutUint16(w.scratch[:2], v)
	return w.write(w.scratch[:2], "u16")
}

// WriteI16 writes a signed short, big endian.
func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }

// WriteU16LE writes an unsigned short, little endian.
func (w *Writer) WriteU16LE(v uint16) error {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	return w.write(w.scratch[:2], "u16 le")
}

// WriteI16LE writes a signed short, little endian.
func (w *Writer) WriteI16LE(v int16) error { return w.WriteU16LE(uint16(v)) }

// WriteU16Smart writes a value on the 1-or-2 byte smart form. Values above
// runebuf.SmartMax fail with runebuf.ErrSmartOutOfRange.
func (w *Writer) WriteU16Smart(v uint16) error {
	n, err := runebuf.PutU16Smart(w.scratch[:2], v)
	if err != nil {
		return errors.Wrapf(err, "write u16 smart %d", v)
	}
	return w.write(w.scratch[:n], "u16 smart")
}

// WriteI16Add writes a signed short, big endian, with the low byte offset
// by 128.
func (w *Writer) WriteI16Add(v int16) error {
	runebuf.PutU16Add(w.scratch[:2], uint16(v))
	return w.write(w.scratch[:2], "i16 add")
}

// WriteI16LEAdd writes a signed short with the offset low byte first and
// the high byte second.
func (w *Writer) WriteI16LEAdd(v int16) error {
	runebuf.PutU16AddLE(w.scratch[:2], uint16(v))
	return w.write(w.scratch[:2], "i16 le add")
}

// WriteU32 writes an unsigned dword, big endian.
func (w *Writer) WriteU32(v uint32) error {
	binary.BigEndian.PutUint32(w.scratch[:4], v)
	return w.write(w.scratch[:4], "u32")
}

// WriteI32 writes a signed dword, big endian.
func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }

// WriteU32LE writes an unsigned dword, little endian.
func (w *Writer) WriteU32LE(v uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	return w.write(w.scratch[:4], "u32 le")
}

// WriteI32LE writes a signed dword, little endian.
func (w *Writer) WriteI32LE(v int32) error { return w.WriteU32LE(uint32(v)) }

// WriteI32ME writes a signed dword in middle endian.
func (w *Writer) WriteI32ME(v int32) error {
	runebuf.PutU32ME(w.scratch[:4], uint32(v))
	return w.write(w.scratch[:4], "i32 me")
}

// WriteI32IME writes a signed dword in inverse middle endian.
func (w *Writer) WriteI32IME(v int32) error {
	runebuf.PutU32IME(w.scratch[:4], uint32(v))
	return w.write(w.scratch[:4], "i32 ime")
}

// WriteU64 writes an unsigned qword, big endian.
func (w *Writer) WriteU64(v uint64) error {
	binary.BigEndian.PutUint64(w.scratch[:8], v)
	return w.write(w.scratch[:8], "u64")
}

// WriteI64 writes a signed qword, big endian.
func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

// WriteStringNullTerminated writes the legacy single-byte encoding of s
// followed by one zero byte.
func (w *Writer) WriteStringNullTerminated(s string) error {
	p, err := runebuf.EncodeText(s)
	if err != nil {
		return errors.Wrap(err, "write string")
	}
	if err := w.write(p, "string"); err != nil {
		return err
	}
	return w.WriteU8(0)
}

// WriteBytesReversedAdd emits p in reverse order with every byte offset
// by 128.
func (w *Writer) WriteBytesReversedAdd(p []byte) error {
	out := make([]byte, len(p))
	runebuf.ReverseAdd(out, p)
	return w.write(out, "bytes reversed add")
}
