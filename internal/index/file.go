package index

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var be = binary.BigEndian

// Magic identifies an index file.
var Magic = [8]byte{'.', 'c', 'f', 'i', 'n', 'd', 'e', 'x'}

// MainVersion is used for checking compatibility
var MainVersion uint8 = 0

// MinorVersion is less important
var MinorVersion uint8 = 1

// ErrInvalidFileFormat means invalid file format.
var ErrInvalidFileFormat = errors.New("index: invalid binary format")

// ErrVersionMismatch means version mismatch between files and program.
var ErrVersionMismatch = errors.New("index: version mismatch")

// ErrBrokenFile means the file is not complete.
var ErrBrokenFile = errors.New("index: broken file")

// ErrChecksumMismatch means the payload does not hash to the stored sum.
var ErrChecksumMismatch = errors.New("index: checksum mismatch")

// Write stores the index at path. The layout is the magic number, two
// version bytes, the xxhash of the compressed payload, then the
// payload: the gob encoding of the index, zstd compressed.
func (x *FM) Write(path string) error {
	var payload bytes.Buffer
	zw, err := zstd.NewWriter(&payload,
		zstd.WithEncoderCRC(false), zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(1))
	if err != nil {
		return errors.Wrap(err, "index: compressor")
	}
	if err = gob.NewEncoder(zw).Encode(x); err != nil {
		return errors.Wrap(err, "index: encode")
	}
	if err = zw.Close(); err != nil {
		return errors.Wrap(err, "index: compress")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "index: create %s", path)
	}
	defer f.Close()

	var header [18]byte
	copy(header[:8], Magic[:])
	header[8] = MainVersion
	header[9] = MinorVersion
	be.PutUint64(header[10:18], xxhash.Sum64(payload.Bytes()))

	if _, err = f.Write(header[:]); err != nil {
		return errors.Wrapf(err, "index: write %s", path)
	}
	if _, err = payload.WriteTo(f); err != nil {
		return errors.Wrapf(err, "index: write %s", path)
	}
	return nil
}

// Open loads an index written by Write.
func Open(path string) (*FM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "index: open %s", path)
	}
	defer f.Close()

	var header [18]byte
	n, _ := io.ReadFull(f, header[:])
	if n < len(header) {
		return nil, errors.Wrapf(ErrBrokenFile, "index: open %s", path)
	}
	if !bytes.Equal(header[:8], Magic[:]) {
		return nil, errors.Wrapf(ErrInvalidFileFormat, "index: open %s", path)
	}
	if header[8] != MainVersion {
		return nil, errors.Wrapf(ErrVersionMismatch, "index: open %s: file %d, program %d",
			path, header[8], MainVersion)
	}

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "index: read %s", path)
	}
	if xxhash.Sum64(payload) != be.Uint64(header[10:18]) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "index: open %s", path)
	}

	zr, err := zstd.NewReader(bytes.NewReader(payload), zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errors.Wrap(err, "index: decompressor")
	}
	defer zr.Close()

	x := &FM{}
	if err = gob.NewDecoder(zr).Decode(x); err != nil {
		return nil, errors.Wrapf(ErrBrokenFile, "index: decode %s: %v", path, err)
	}
	return x, nil
}
