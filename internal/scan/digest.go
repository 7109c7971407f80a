package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Digest is the content checksum of a file, or Absent when the file could
// not be read. Two digests are compared with ==.
type Digest struct {
	Sum     uint64
	Present bool
}

var Absent = Digest{}

func (d Digest) String() string {
	if !d.Present {
		return "absent"
	}
	return fmt.Sprintf("%016x", d.Sum)
}

// Hash reads the whole file at path. Any open or read failure yields Absent.
func Hash(path string) Digest {
	f, err := os.Open(path)
	if err != nil {
		return Absent
	}

	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return Absent
	}

	return Digest{Sum: h.Sum64(), Present: true}
}
