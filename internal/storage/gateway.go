// Package storage implements the snapshot persistence gateway: a flat
// key-to-payload store the domain store serializes its collections into.
// The gateway performs no validation and no record-level migration; it
// moves opaque payloads in and out.
package storage

// SnapshotGateway loads and saves serialized collections under fixed keys.
type SnapshotGateway interface {
	// Load returns the payload stored under key. The boolean reports
	// whether a payload exists; a missing key is not an error.
	Load(key string) ([]byte, bool, error)

	// Save replaces the payload stored under key.
	Save(key string, payload []byte) error
}
