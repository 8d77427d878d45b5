package sparql

import (
	"strings"

	"github.com/google/uuid"
)

// NewBlankNode returns a fresh blank-node label of the form _:b<hex>.
//
// Labels are derived from UUIDv7, so they are unique per call and sortable
// by creation time, which keeps generated query text stable to eyeball
// when many blank nodes appear in one update.
//
// Panics if UUID generation fails (should never happen in practice).
func NewBlankNode() string {
	return "_:b" + strings.ReplaceAll(uuid.Must(uuid.NewV7()).String(), "-", "")
}
