package models

// ChangeToken is an opaque server-issued cursor marking a point in a change
// stream. The engine never parses or constructs token contents; it only
// round-trips the exact bytes the remote store handed back. A nil token means
// "no point known" and requests changes from the beginning of time.
type ChangeToken []byte

// Clone returns an independent copy of the token, or nil for a nil token.
func (t ChangeToken) Clone() ChangeToken {
	if t == nil {
		return nil
	}
	c := make(ChangeToken, len(t))
	copy(c, t)
	return c
}

// TokenScope is the stable key under which a change token is persisted.
// One scope exists for the whole database and one per record zone.
type TokenScope string

// DatabaseScope is the persistence key for the database-level change token.
const DatabaseScope TokenScope = "database"

// ZoneScope returns the persistence key for the given zone's change token.
func ZoneScope(zone ZoneID) TokenScope {
	return TokenScope("zone:" + zone.String())
}
