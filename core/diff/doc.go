// Package diff computes one-way key differences between a declared data set
// and what the remote store actually contains.
//
// It backs two reconciliation flows: the page-manifest sync (declared pages
// vs. remote page records) and the forced full content resync (bundled
// fallback rows vs. remote content rows). Both flows only ever add or update
// remote data; Extra keys are reported, never acted on.
package diff
