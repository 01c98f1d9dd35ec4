package buffer

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"

	"github.com/gielinor/runebuf"
)

// MemoryMappedBuffer is a ByteBuffer whose storage is a memory mapped
// file, useful for assembling or replaying packet captures in place.
type MemoryMappedBuffer struct {
	*ByteBuffer
	loc  string // location of the memory mapped file
	size int    // size in bytes

	f *os.File
	m mmap.MMap
}

// NewMemoryMappedBuffer will create and return a new instance of a
// MemoryMappedBuffer, replacing any file already at loc.
func NewMemoryMappedBuffer(loc string, size int) (*MemoryMappedBuffer, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Create(loc)
	if err != nil {
		return nil, err
	}

	if err = f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	if runebuf.Logging() {
		runebuf.Logger().Info("mapped buffer file",
			zap.String("module", "buffer"),
			zap.String("loc", loc),
			zap.Int("size", size),
		)
	}

	return &MemoryMappedBuffer{
		ByteBuffer: NewSlice(m),
		loc:        loc,
		size:       size,
		f:          f,
		m:          m,
	}, nil
}

// Sync flushes the mapped region back to the backing file.
func (b *MemoryMappedBuffer) Sync() error {
	return b.m.Flush()
}

// Unmap will manually delete the memory mapping of a mapped buffer and
// close the backing file, removing it as well if removefile is set.
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if err := b.m.Unmap(); err != nil {
		return err
	}

	if err := b.f.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return err
		}
	}

	return nil
}
