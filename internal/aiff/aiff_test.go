package aiff

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeTestAIFF builds a minimal AIFF file: a COMM chunk and an SSND
// chunk with odd-length sample data to exercise pad handling.
func writeTestAIFF(t *testing.T, dir string) string {
	t.Helper()

	var body bytes.Buffer
	body.WriteString("AIFF")

	comm := make([]byte, 18)
	comm[1] = 1 // one channel
	writeRawChunk(&body, "COMM", comm)

	ssnd := append(make([]byte, 8), 0x01, 0x02, 0x03) // odd payload length
	writeRawChunk(&body, "SSND", ssnd)

	var file bytes.Buffer
	file.WriteString("FORM")
	binary.Write(&file, binary.BigEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	path := filepath.Join(dir, "test.aiff")
	if err := os.WriteFile(path, file.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeRawChunk(buf *bytes.Buffer, id string, payload []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(payload)))
	buf.Write(payload)
	if len(payload)%2 == 1 {
		buf.WriteByte(0)
	}
}

func TestReadID3_NoChunk(t *testing.T) {
	path := writeTestAIFF(t, t.TempDir())

	payload, err := ReadID3(path)
	if err != nil {
		t.Fatalf("ReadID3() = %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload for a file without an ID3 chunk, got %d bytes", len(payload))
	}
}

func TestWriteID3_RoundTrip(t *testing.T) {
	path := writeTestAIFF(t, t.TempDir())

	want := []byte("ID3FRAMEDATA")
	if err := WriteID3(path, want); err != nil {
		t.Fatalf("WriteID3() = %v", err)
	}

	got, err := ReadID3(path)
	if err != nil {
		t.Fatalf("ReadID3() = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadID3() = %q, want %q", got, want)
	}
}

func TestWriteID3_ReplacesExistingChunk(t *testing.T) {
	path := writeTestAIFF(t, t.TempDir())

	if err := WriteID3(path, []byte("first-payload")); err != nil {
		t.Fatal(err)
	}
	if err := WriteID3(path, []byte("second")); err != nil {
		t.Fatal(err)
	}

	got, err := ReadID3(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("ReadID3() = %q, want the replacement payload", got)
	}

	// Exactly one ID3 chunk must remain.
	if n := countChunks(t, path, "ID3 "); n != 1 {
		t.Errorf("found %d ID3 chunks, want 1", n)
	}
}

func TestWriteID3_PreservesOtherChunks(t *testing.T) {
	path := writeTestAIFF(t, t.TempDir())
	before := readChunkPayload(t, path, "SSND")

	if err := WriteID3(path, []byte("odd")); err != nil { // odd length, exercises padding
		t.Fatal(err)
	}

	after := readChunkPayload(t, path, "SSND")
	if !bytes.Equal(before, after) {
		t.Error("SSND chunk changed across an ID3 rewrite")
	}
	if readChunkPayload(t, path, "COMM") == nil {
		t.Error("COMM chunk lost across an ID3 rewrite")
	}
}

func TestWriteID3_UpdatesFormSize(t *testing.T) {
	path := writeTestAIFF(t, t.TempDir())

	if err := WriteID3(path, []byte("payload!")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	formSize := binary.BigEndian.Uint32(data[4:8])
	if int(formSize) != len(data)-8 {
		t.Errorf("FORM size = %d, want %d", formSize, len(data)-8)
	}
}

func TestReadID3_NotAIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.aiff")
	if err := os.WriteFile(path, []byte("this is not an aiff file at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadID3(path); err == nil {
		t.Error("ReadID3() should fail on a non-AIFF file")
	}

	if err := WriteID3(path, []byte("x")); err == nil {
		t.Error("WriteID3() should fail on a non-AIFF file")
	}
}

func countChunks(t *testing.T, path, id string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	forEachChunk(data, func(chunkID string, _ []byte) {
		if chunkID == id {
			count++
		}
	})
	return count
}

func readChunkPayload(t *testing.T, path, id string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var payload []byte
	forEachChunk(data, func(chunkID string, p []byte) {
		if chunkID == id && payload == nil {
			payload = p
		}
	})
	return payload
}

func forEachChunk(data []byte, fn func(id string, payload []byte)) {
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8
		if pos+size > len(data) {
			return
		}
		fn(id, data[pos:pos+size])
		pos += size + size%2
	}
}
