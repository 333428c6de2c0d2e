package models

import "fmt"

// ZoneID identifies a record zone: a server-side partition of records that
// shares one change-tracking stream.
type ZoneID struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

func (z ZoneID) String() string {
	return fmt.Sprintf("%s/%s", z.Owner, z.Name)
}

// IsZero reports whether the zone identifier is empty.
func (z ZoneID) IsZero() bool {
	return z.Name == "" && z.Owner == ""
}
