package models

import (
	"encoding/json"
	"time"
)

// RecordID identifies a record within a zone.
type RecordID struct {
	Name string `json:"name"`
	Zone ZoneID `json:"zone"`
}

func (id RecordID) String() string {
	return id.Zone.String() + ":" + id.Name
}

// Record is one remotely stored record. The payload is opaque to the sync
// layer; encoding and decoding of domain entities is the local store
// collaborator's concern.
type Record struct {
	ID         RecordID        `json:"id"`
	EntityType string          `json:"entity_type"`
	Payload    json.RawMessage `json:"payload"`

	// ChangeTag is the server's version marker for the record. The server
	// rejects a save whose tag is older than the one it holds.
	ChangeTag string `json:"change_tag,omitempty"`

	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}
