package models

// DatabaseChanges is the result of a database-level delta request: the zones
// whose contents changed since the supplied token, plus the token to use next
// time. A nil NewToken means the server issued no new cursor and the caller
// keeps its previous one.
type DatabaseChanges struct {
	ChangedZones []ZoneID    `json:"changed_zones"`
	NewToken     ChangeToken `json:"new_token,omitempty"`
}

// RemoteChangeBatch is the result of a zone-level delta request: changed
// records in server order, identifiers of deleted records, and the zone's next
// token. The batch is created per request, applied to the local store, and
// discarded.
type RemoteChangeBatch struct {
	Records  []Record    `json:"records"`
	Deleted  []RecordID  `json:"deleted"`
	NewToken ChangeToken `json:"new_token,omitempty"`
}

// RecordQuery is a zone-scoped record query filter.
type RecordQuery struct {
	EntityType string `json:"entity_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// QueryPage is one page of query results. A non-empty Cursor means more
// results exist and must be fetched by repeating the query with it; the
// continuation preserves the relative order of matches.
type QueryPage struct {
	Records []Record `json:"records"`
	Cursor  string   `json:"cursor,omitempty"`
}

// ZoneModification reports the outcome of a zone create/delete request.
// Creating an existing zone or deleting an absent one is not an error.
type ZoneModification struct {
	Created []ZoneID `json:"created"`
	Deleted []ZoneID `json:"deleted"`
}
