// Package models defines the remote row formats (pages, content, media)
// and the in-memory value types shared by the sync features.
//
// The central type is Value, an explicit scalar-or-list discriminated value.
// The remote content table stores every shape in a single text column per
// language; EncodeColumn/DecodeColumn are the only places that convention
// lives.
package models
