package runebuf

import "errors"

// ErrOutOfRange is returned when a cursor is repositioned outside the
// bounds of the underlying storage.
var ErrOutOfRange = errors.New("position out of range")

// ErrEndOfData is returned when a bulk read asks for more bytes than
// remain between the read cursor and the end of storage.
var ErrEndOfData = errors.New("could not read enough bytes from buffer")

// ErrSmartOutOfRange is returned when a value does not fit the 1-or-2 byte
// smart representation.
var ErrSmartOutOfRange = errors.New("value out of range for a 16-bit smart")

// ErrInvalidText is returned when string data is not representable in the
// legacy single-byte charset.
var ErrInvalidText = errors.New("text is not valid in the legacy charset")
