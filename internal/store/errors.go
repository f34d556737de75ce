package store

import "github.com/Rhushya/Kloudmate/internal/errors"

const (
	// Configuration Errors
	ErrInvalidDBPath = errors.ErrorCode("store_invalid_db_path")

	// Storage Errors
	ErrStorageInit      = errors.ErrorCode("store_init_failed")
	ErrStorageAccess    = errors.ErrorCode("store_access_failed")
	ErrSchemaInitFailed = errors.ErrorCode("store_schema_init_failed")

	// Query Errors
	ErrQueryExecution = errors.ErrorCode("store_query_execution_failed")
)
