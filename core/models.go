package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Revision identifies a build of the term-weight model. Two models built
// from the same corpus text carry the same revision, so a log line or
// monitor callback can confirm which catalog+model pair served a query.
type Revision uint64

// Fingerprint derives a deterministic Revision from text content using
// BLAKE2b hashing. Identical content always produces the same revision.
func Fingerprint(text string) Revision {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Revision(binary.LittleEndian.Uint64(sum))
}

// Record is a single catalog entry: a labeled bag of keywords with an
// opaque free-text note returned alongside any match.
type Record struct {
	Id          int    // Ordinal position in the catalog, assigned at insertion
	Label       string // Human-readable name, unique by convention only
	KeywordText string // Whitespace-delimited terms indexed by the model
	Note        string // Free-text payload, opaque to the engine
}
