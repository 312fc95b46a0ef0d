package ebml

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a 64-bit content hash of a MasterFull tag's
// canonical encoding, letting a caller that buffers repeated subtrees
// (e.g. repeated index-shaped structures) deduplicate or cache them
// without walking the tree by hand. It returns (0, false) for any Tag
// that isn't EventMasterFull.
func (t Tag) Fingerprint() (uint64, bool) {
	if t.Kind != EventMasterFull {
		return 0, false
	}
	h := xxhash.New()
	wr := NewWriter(h)
	if err := wr.Write(t); err != nil {
		return 0, false
	}
	return h.Sum64(), true
}
