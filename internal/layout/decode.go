// internal/layout/decode.go
package layout

import (
	"bytes"
	"encoding/binary"

	errors "github.com/juju/errors"

	"github.com/tamzrod/yl-params/internal/device"
)

// Record is any fixed-layout block record.
type Record interface {
	DeviceInfo | ConfigurationInfo | ProductlineInfo
}

var (
	errWrongBlockSize = errors.New("block size different than record layout")
	errLayoutDrift    = errors.New("record layout is not one block long")

	byteOrder binary.ByteOrder = binary.LittleEndian
)

// Decode copies one raw block verbatim into a record.
// The blk has to be BlockSize in size.
func Decode[T Record](blk []byte) (T, error) {
	var rec T

	if len(blk) != device.BlockSize {
		return rec, errors.Annotatef(errWrongBlockSize, "expected %d, got %d",
			device.BlockSize, len(blk))
	}
	if binary.Size(&rec) != device.BlockSize {
		return rec, errLayoutDrift
	}

	if err := binary.Read(bytes.NewReader(blk), byteOrder, &rec); err != nil {
		return rec, errors.Trace(err)
	}
	return rec, nil
}

// Encode renders a record back into its raw block form.
// Blank padding fields come out zeroed.
func Encode[T Record](rec T) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(device.BlockSize)

	if err := binary.Write(&buf, byteOrder, &rec); err != nil {
		return nil, errors.Trace(err)
	}
	if buf.Len() != device.BlockSize {
		return nil, errLayoutDrift
	}
	return buf.Bytes(), nil
}

// Size returns the encoded size of a record type.
func Size[T Record]() int {
	var rec T
	return binary.Size(&rec)
}
