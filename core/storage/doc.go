// Package storage provides the S3/MinIO client used to resolve media
// objects referenced by media rows in the content store.
//
// The engine never uploads binary content; it only resolves stored object
// keys to presigned download URLs for the editing surface. The Client
// interface is therefore read-only, which also keeps the mock surface
// (storage/mocks) small.
package storage
