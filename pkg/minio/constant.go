package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
	disableKeepAlives   = false
)

const (
	// MaxFileSizeBytes is the maximum upload file size (5GB).
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024
)
