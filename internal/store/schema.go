package store

const (
	// TableName is the single metrics table. The assistant's schema
	// guidance must match it.
	TableName = "system_metrics"

	// TimestampLayout is how sample timestamps are serialized. UTC with
	// second precision, lexically comparable with datetime('now').
	TimestampLayout = "2006-01-02 15:04:05"

	createTableSQL = `
    CREATE TABLE IF NOT EXISTS system_metrics (
        timestamp    TEXT NOT NULL,
        hostname     TEXT NOT NULL,
        cpu_usage    REAL NOT NULL,
        memory_usage REAL NOT NULL,
        disk_usage   REAL NOT NULL,
        PRIMARY KEY (timestamp, hostname)
    )`

	insertSampleSQL = `
    INSERT INTO system_metrics (
        timestamp, hostname,
        cpu_usage, memory_usage, disk_usage
    ) VALUES (?, ?, ?, ?, ?)`
)
