package buffer

import (
	"os"
	"path"
	"testing"
)

func TestMemoryMappedBuffer(t *testing.T) {
	loc := path.Join(t.TempDir(), "packet.bin")

	b, err := NewMemoryMappedBuffer(loc, 10)
	if err != nil {
		t.Error("cannot proceed with test as cannot create buffer\n", err)
		return
	}

	if _, err = os.Stat(loc); err != nil {
		t.Errorf("no file created at %v despite the buffer being initialized", loc)
		return
	}

	b.Skip(5)
	b.WriteU8('x')
	if err = b.Sync(); err != nil {
		t.Error("cannot sync mapped buffer\n", err)
		return
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Error("cannot read data from memory mapped file")
		return
	}

	if data[5] != 'x' {
		t.Error("data written in buffer not getting reflected in file")
	}

	if err = b.Unmap(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("memory mapped file not getting deleted on Unmap")
	}
}

func TestMemoryMappedBufferReplacesExistingFile(t *testing.T) {
	loc := path.Join(t.TempDir(), "packet.bin")

	if err := os.WriteFile(loc, []byte("stale"), 0644); err != nil {
		t.Error("cannot proceed with test as cannot seed file\n", err)
		return
	}

	b, err := NewMemoryMappedBuffer(loc, 4)
	if err != nil {
		t.Error(err)
		return
	}
	defer b.Unmap(true)

	if b.Len() != 4 {
		t.Errorf("expected a fresh 4 byte mapping, got %v bytes", b.Len())
	}
	for i, v := range b.Bytes() {
		if v != 0 {
			t.Errorf("pos: %v, expected zero-filled fresh mapping, got %v", i, v)
		}
	}
}
