// Package stream layers the game codec over arbitrary byte sources and
// sinks. Unlike the owned buffer surface, the underlying io.Reader or
// io.Writer here is external, a socket or a file whose shortness, closure
// or malformation is an ordinary condition, so every operation returns an
// error instead of panicking. Blocking, timeouts and retries are the
// transport's business, not this package's.
package stream

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/gielinor/runebuf"
)

// Reader decodes game wire primitives from any io.Reader. It keeps no
// state beyond the source; positioning is whatever the source provides.
type Reader struct {
	r       io.Reader
	scratch [8]byte
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// readFull fills n bytes of the scratch buffer from the source. Short
// reads surface as io.ErrUnexpectedEOF wrapped with the operation name.
func (r *Reader) readFull(n int, what string) ([]byte, error) {
	p := r.scratch[:n]
	if _, err := io.ReadFull(r.r, p); err != nil {
		return nil, errors.Wrapf(err, "read %s", what)
	}
	return p, nil
}

// ReadBytes fills p from the source.
func (r *Reader) ReadBytes(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return errors.Wrapf(err, "read %d bytes", len(p))
	}
	return nil
}

// ReadBool reads a single byte as a bool. Any nonzero byte is true.
func (r *Reader) ReadBool() (bool, error) {
	p, err := r.readFull(1, "bool")
	if err != nil {
		return false, err
	}
	return p[0] != 0, nil
}

// ReadU8 reads an unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	p, err := r.readFull(1, "u8")
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads an unsigned short, big endian.
func (r *Reader) ReadU16() (uint16, error) {
	p, err := r.readFull(2, "u16")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// ReadI16 reads a signed short, big endian.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU16LE reads an unsigned short, little endian.
func (r *Reader) ReadU16LE() (uint16, error) {
	p, err := r.readFull(2, "u16 le")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadI16LE reads a signed short, little endian.
func (r *Reader) ReadI16LE() (int16, error) {
	v, err := r.ReadU16LE()
	return int16(v), err
}

// ReadU16Smart reads a 1-or-2 byte smart value. The high bit of the first
// byte selects the width.
func (r *Reader) ReadU16Smart() (uint16, error) {
	p, err := r.readFull(1, "u16 smart")
	if err != nil {
		return 0, err
	}
	if runebuf.SmartLenFirst(p[0]) == 1 {
		return runebuf.U16Smart(p), nil
	}
	if _, err := io.ReadFull(r.r, r.scratch[1:2]); err != nil {
		return 0, errors.Wrap(err, "read u16 smart")
	}
	return runebuf.U16Smart(r.scratch[:2]), nil
}

// ReadU16Add reads an unsigned short, big endian, with the low byte offset
// by 128.
func (r *Reader) ReadU16Add() (uint16, error) {
	p, err := r.readFull(2, "u16 add")
	if err != nil {
		return 0, err
	}
	return runebuf.U16Add(p), nil
}

// ReadI16Add reads a signed short, big endian, with the low byte offset by
// 128.
func (r *Reader) ReadI16Add() (int16, error) {
	v, err := r.ReadU16Add()
	return int16(v), err
}

// ReadU16AddLE reads an unsigned short with the offset low byte first and
// the high byte second.
func (r *Reader) ReadU16AddLE() (uint16, error) {
	p, err := r.readFull(2, "u16 add le")
	if err != nil {
		return 0, err
	}
	return runebuf.U16AddLE(p), nil
}

// ReadI16AddLE reads the signed form of ReadU16AddLE.
func (r *Reader) ReadI16AddLE() (int16, error) {
	v, err := r.ReadU16AddLE()
	return int16(v), err
}

// ReadU32 reads an unsigned dword, big endian.
func (r *Reader) ReadU32() (uint32, error) {
	p, err := r.readFull(4, "u32")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// ReadI32 reads a signed dword, big endian.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU32LE reads an unsigned dword, little endian.
func (r *Reader) ReadU32LE() (uint32, error) {
	p, err := r.readFull(4, "u32 le")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadI32LE reads a signed dword, little endian.
func (r *Reader) ReadI32LE() (int32, error) {
	v, err := r.ReadU32LE()
	return int32(v), err
}

// ReadU32ME reads an unsigned dword in middle endian.
func (r *Reader) ReadU32ME() (uint32, error) {
	p, err := r.readFull(4, "u32 me")
	if err != nil {
		return 0, err
	}
	return runebuf.U32ME(p), nil
}

// ReadI32ME reads a signed dword in middle endian.
func (r *Reader) ReadI32ME() (int32, error) {
	v, err := r.ReadU32ME()
	return int32(v), err
}

// ReadU32IME reads an unsigned dword in inverse middle endian.
func (r *Reader) ReadU32IME() (uint32, error) {
	p, err := r.readFull(4, "u32 ime")
	if err != nil {
		return 0, err
	}
	return runebuf.U32IME(p), nil
}

// ReadI32IME reads a signed dword in inverse middle endian.
func (r *Reader) ReadI32IME() (int32, error) {
	v, err := r.ReadU32IME()
	return int32(v), err
}

// ReadU64 reads an unsigned qword, big endian.
func (r *Reader) ReadU64() (uint64, error) {
	p, err := r.readFull(8, "u64")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// ReadI64 reads a signed qword, big endian.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadString reads bytes up to and including the first zero byte and
// decodes them as legacy text. A source that ends before the terminator is
// an error here, unlike on the owned buffer.
func (r *Reader) ReadString() (string, error) {
	var raw []byte
	for {
		p, err := r.readFull(1, "string")
		if err != nil {
			return "", err
		}
		if p[0] == 0 {
			break
		}
		raw = append(raw, p[0])
	}
	s, err := runebuf.DecodeText(raw)
	if err != nil {
		return "", errors.Wrap(err, "read string")
	}
	return s, nil
}
