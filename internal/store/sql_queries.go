// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package store

const (
	putBoxValue = `
		INSERT INTO boxes (box, key, value, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (box, key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	getBoxValue = `
		SELECT value
		FROM boxes
		WHERE box = $1 AND key = $2;`

	deleteBoxValue = `
		DELETE FROM boxes
		WHERE box = $1 AND key = $2;`

	getBoxKeys = `
		SELECT key
		FROM boxes
		WHERE box = $1;`

	saveOperation = `
		INSERT INTO sync_queue (
			id,
			operation_kind,
			entity_type,
			entity_id,
			payload,
			created_at,
			retry_count,
			last_error,
			priority
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getSingleOperation = `
		SELECT
			id,
			operation_kind,
			entity_type,
			entity_id,
			payload,
			created_at,
			retry_count,
			last_error,
			priority
		FROM sync_queue
		WHERE id = $1;`

	getAllOperations = `
		SELECT
			id,
			operation_kind,
			entity_type,
			entity_id,
			payload,
			created_at,
			retry_count,
			last_error,
			priority
		FROM sync_queue
		ORDER BY priority DESC, created_at ASC;`

	updateOperation = `
		UPDATE sync_queue SET
			retry_count = $1,
			last_error  = $2
		WHERE id = $3;`

	deleteOperation = `
		DELETE FROM sync_queue
		WHERE id = $1;`

	countOperations = `
		SELECT COUNT(*) FROM sync_queue;`

	upsertContent = `
		INSERT INTO offline_content (
			id,
			type,
			title,
			download_urls,
			size_bytes,
			priority,
			created_at,
			expires_at,
			is_downloaded,
			download_progress,
			content_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			type              = excluded.type,
			title             = excluded.title,
			download_urls     = excluded.download_urls,
			size_bytes        = excluded.size_bytes,
			priority          = excluded.priority,
			expires_at        = excluded.expires_at,
			is_downloaded     = excluded.is_downloaded,
			download_progress = excluded.download_progress,
			content_hash      = excluded.content_hash;`

	getSingleContent = `
		SELECT
			id,
			type,
			title,
			download_urls,
			size_bytes,
			priority,
			created_at,
			expires_at,
			is_downloaded,
			download_progress,
			content_hash
		FROM offline_content
		WHERE id = $1;`

	getAllContent = `
		SELECT
			id,
			type,
			title,
			download_urls,
			size_bytes,
			priority,
			created_at,
			expires_at,
			is_downloaded,
			download_progress,
			content_hash
		FROM offline_content
		ORDER BY priority DESC, created_at ASC;`

	getUndownloadedContent = `
		SELECT
			id,
			type,
			title,
			download_urls,
			size_bytes,
			priority,
			created_at,
			expires_at,
			is_downloaded,
			download_progress,
			content_hash
		FROM offline_content
		WHERE is_downloaded = 0
		ORDER BY priority DESC, created_at ASC;`

	updateContentProgress = `
		UPDATE offline_content SET
			download_progress = $1
		WHERE id = $2;`

	markContentDownloaded = `
		UPDATE offline_content SET
			is_downloaded     = 1,
			download_progress = 1.0,
			content_hash      = $1
		WHERE id = $2;`

	deleteContent = `
		DELETE FROM offline_content
		WHERE id = $1;`

	getExpiredContent = `
		SELECT
			id,
			type,
			title,
			download_urls,
			size_bytes,
			priority,
			created_at,
			expires_at,
			is_downloaded,
			download_progress,
			content_hash
		FROM offline_content
		WHERE expires_at IS NOT NULL AND expires_at < $1;`

	insertAnalyticsEvent = `
		INSERT INTO analytics (name, properties, created_at, synced)
		VALUES ($1, $2, $3, 0);`

	getUnsyncedAnalytics = `
		SELECT
			id,
			name,
			properties,
			created_at,
			synced
		FROM analytics
		WHERE synced = 0
		ORDER BY id ASC;`

	upsertEntity = `
		INSERT INTO content (entity_type, entity_id, title, body, data, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			title      = excluded.title,
			body       = excluded.body,
			data       = excluded.data,
			updated_at = excluded.updated_at;`

	getSingleEntity = `
		SELECT entity_type, entity_id, title, body, data, updated_at
		FROM content
		WHERE entity_type = $1 AND entity_id = $2;`

	deleteEntity = `
		DELETE FROM content
		WHERE entity_type = $1 AND entity_id = $2;`

	deleteEntityShadow = `
		DELETE FROM content_fts
		WHERE entity_type = $1 AND entity_id = $2;`

	insertEntityShadow = `
		INSERT INTO content_fts (entity_type, entity_id, title, body)
		VALUES ($1, $2, $3, $4);`
)
