// Package aiff reads and writes the ID3 chunk of AIFF files.
//
// AIFF is an IFF container: a "FORM" header followed by typed chunks
// (COMM, SSND, ...). Media players expect ID3 metadata inside a chunk
// with the identifier "ID3 ". This package does exactly one container
// operation: extract that chunk, or rewrite the file with a new one,
// leaving every other chunk byte-identical. It never inspects the audio
// data itself.
//
// # Reading
//
//	payload, err := aiff.ReadID3("track.aiff")
//	// payload is nil when the file has no ID3 chunk
//
// # Writing
//
//	err := aiff.WriteID3("track.aiff", tagBytes)
//
// WriteID3 assembles the new file beside the original and renames it into
// place, so an I/O failure mid-write leaves the original untouched. Both
// AIFF and AIFC form types are accepted; anything else is ErrNotAIFF.
//
// The ID3 payload is opaque here; serialization of the actual frames is
// the tagger's job.
package aiff
