// Package fingerprint computes CurseForge content fingerprints.
//
// A fingerprint is MurmurHash2 (seed 1) over the file contents with every
// tab, line feed, carriage return and space byte removed. The service uses
// the same transform to index uploaded files, so a locally computed value can
// be sent to the fingerprint endpoints to identify a file by its bytes.
package fingerprint

import (
	"fmt"
	"io"
	"os"
)

// Seed is the MurmurHash2 seed the service uses for fingerprints.
const Seed = 1

// Fingerprint is a content identifier. The service treats it as a 32-bit
// unsigned integer.
type Fingerprint uint32

// ignored reports whether b is dropped before hashing.
func ignored(b byte) bool {
	switch b {
	case '\t', '\n', '\r', ' ':
		return true
	}
	return false
}

// Filter returns a copy of data without bytes 9, 10, 13 and 32. Bytes are
// compared as raw octets; multi-byte encodings are not decoded.
func Filter(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if !ignored(b) {
			out = append(out, b)
		}
	}
	return out
}

// Compute returns the fingerprint of data. It never fails and does not
// retain data.
func Compute(data []byte) Fingerprint {
	return Fingerprint(Murmur2(Filter(data), Seed))
}

// ComputeReader fingerprints everything read from r. The hash seeds itself
// with the filtered length, so the whole stream is buffered first.
func ComputeReader(r io.Reader) (Fingerprint, error) {
	var filtered []byte
	buf := make([]byte, 32<<10)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if !ignored(b) {
				filtered = append(filtered, b)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read content: %w", err)
		}
	}
	return Fingerprint(Murmur2(filtered, Seed)), nil
}

// ComputeFile fingerprints the file at path.
func ComputeFile(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("fingerprint %s: %w", path, err)
	}
	defer f.Close()

	fp, err := ComputeReader(f)
	if err != nil {
		return 0, fmt.Errorf("fingerprint %s: %w", path, err)
	}
	return fp, nil
}

// ComputeAll fingerprints each buffer, preserving order.
func ComputeAll(contents [][]byte) []Fingerprint {
	out := make([]Fingerprint, len(contents))
	for i, c := range contents {
		out[i] = Compute(c)
	}
	return out
}
