package store

const (
	upsertRemoteRecord = `
		INSERT INTO records (
			zone_owner,
			zone_name,
			name,
			entity_type,
			payload,
			change_tag,
			pending,
			modified_at
		) VALUES (?, ?, ?, ?, ?, ?, 0, ?)
		ON CONFLICT (zone_owner, zone_name, name) DO UPDATE SET
			entity_type = excluded.entity_type,
			payload     = excluded.payload,
			change_tag  = excluded.change_tag,
			pending     = 0,
			modified_at = excluded.modified_at;`

	upsertLocalRecord = `
		INSERT INTO records (
			zone_owner,
			zone_name,
			name,
			entity_type,
			payload,
			change_tag,
			pending,
			modified_at
		) VALUES (?, ?, ?, ?, ?, ?, 1, ?)
		ON CONFLICT (zone_owner, zone_name, name) DO UPDATE SET
			entity_type = excluded.entity_type,
			payload     = excluded.payload,
			pending     = 1,
			modified_at = excluded.modified_at;`

	deleteRecord = `
		DELETE FROM records
		WHERE zone_owner = ? AND zone_name = ? AND name = ?;`

	markRecordSynced = `
		UPDATE records SET
			pending    = 0,
			change_tag = ?
		WHERE zone_owner = ? AND zone_name = ? AND name = ?;`

	pendingEntityTypes = `
		SELECT DISTINCT entity_type
		FROM records
		WHERE pending = 1
		ORDER BY entity_type;`

	loadToken = `
		SELECT token
		FROM sync_tokens
		WHERE scope = ?;`

	saveToken = `
		INSERT INTO sync_tokens (scope, token, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (scope) DO UPDATE SET
			token      = excluded.token,
			updated_at = CURRENT_TIMESTAMP;`

	clearToken = `
		DELETE FROM sync_tokens
		WHERE scope = ?;`
)
