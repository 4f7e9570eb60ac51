// Package utils provides small helpers shared by the sync features,
// primarily batching support for chunked remote writes.
package utils
