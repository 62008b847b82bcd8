package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotAIFF is returned when a file does not start with a FORM header
// carrying an AIFF or AIFC form type.
var ErrNotAIFF = errors.New("not an AIFF file")

// id3ChunkID is the chunk that carries the embedded ID3 tag. The trailing
// space is part of the four-character IFF identifier.
const id3ChunkID = "ID3 "

// header is the fixed 12-byte FORM header: "FORM", a big-endian size
// covering everything after it, and the form type.
type header struct {
	size     uint32
	formType [4]byte
}

func readHeader(r io.Reader) (header, error) {
	var raw [12]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return header{}, ErrNotAIFF
	}
	if string(raw[0:4]) != "FORM" {
		return header{}, ErrNotAIFF
	}
	h := header{size: binary.BigEndian.Uint32(raw[4:8])}
	copy(h.formType[:], raw[8:12])
	if ft := string(h.formType[:]); ft != "AIFF" && ft != "AIFC" {
		return header{}, ErrNotAIFF
	}
	return h, nil
}

// ReadID3 returns the raw ID3 tag payload embedded in the file, or nil
// when the file carries no ID3 chunk. A file without a tag is not an
// error; a file that is not AIFF at all is.
func ReadID3(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := readHeader(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for {
		id, size, err := readChunkHeader(f)
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if id == id3ChunkID {
			payload := make([]byte, size)
			if _, err := io.ReadFull(f, payload); err != nil {
				return nil, fmt.Errorf("%s: truncated ID3 chunk: %w", path, err)
			}
			return payload, nil
		}

		if _, err := f.Seek(int64(size)+pad(size), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
}

// WriteID3 rewrites the file with its ID3 chunk replaced by payload.
//
// Every other chunk is preserved byte-for-byte and in order; the ID3
// chunk is written last, replacing any existing ID3 chunks. The FORM size
// is recomputed and IFF odd-length padding applied. The new content is
// assembled in a temporary file in the same directory and renamed over
// the original, so a failed write never leaves a half-written file behind.
func WriteID3(path string, payload []byte) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	hdr, err := readHeader(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	// Placeholder FORM size; fixed up once the content length is known.
	if err := writeHeader(tmp, hdr.formType); err != nil {
		return err
	}

	if err := copyChunks(tmp, src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := writeChunk(tmp, id3ChunkID, payload); err != nil {
		return err
	}

	end, err := tmp.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	var sizeField [4]byte
	binary.BigEndian.PutUint32(sizeField[:], uint32(end-8))
	if _, err := tmp.WriteAt(sizeField[:], 4); err != nil {
		return err
	}

	if err := tmp.Chmod(info.Mode()); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// copyChunks streams every chunk except ID3 chunks from src to dst,
// re-emitting the pad byte after odd-length chunks.
func copyChunks(dst io.Writer, src *os.File) error {
	for {
		id, size, err := readChunkHeader(src)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if id == id3ChunkID {
			if _, err := src.Seek(int64(size)+pad(size), io.SeekCurrent); err != nil {
				return err
			}
			continue
		}

		if err := writeChunkHeader(dst, id, size); err != nil {
			return err
		}
		if _, err := io.CopyN(dst, src, int64(size)); err != nil {
			return fmt.Errorf("truncated %q chunk: %w", id, err)
		}
		if pad(size) > 0 {
			if _, err := src.Seek(1, io.SeekCurrent); err != nil {
				return err
			}
			if _, err := dst.Write([]byte{0}); err != nil {
				return err
			}
		}
	}
}

func readChunkHeader(r io.Reader) (id string, size uint32, err error) {
	var raw [8]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return "", 0, io.EOF
		}
		return "", 0, err
	}
	return string(raw[0:4]), binary.BigEndian.Uint32(raw[4:8]), nil
}

func writeHeader(w io.Writer, formType [4]byte) error {
	var raw [12]byte
	copy(raw[0:4], "FORM")
	copy(raw[8:12], formType[:])
	_, err := w.Write(raw[:])
	return err
}

func writeChunkHeader(w io.Writer, id string, size uint32) error {
	var raw [8]byte
	copy(raw[0:4], id)
	binary.BigEndian.PutUint32(raw[4:8], size)
	_, err := w.Write(raw[:])
	return err
}

func writeChunk(w io.Writer, id string, payload []byte) error {
	if err := writeChunkHeader(w, id, uint32(len(payload))); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if len(payload)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

// pad returns the IFF pad length (0 or 1) after a chunk of the given size.
func pad(size uint32) int64 {
	return int64(size % 2)
}
