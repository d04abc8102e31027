// Package batch encodes every eligible clip in a folder.
//
// A batch runs up to two passes over the same source list: proxies first,
// then full-resolution intermediates. Jobs execute strictly one at a time and
// a failed job never aborts the rest; the Summary records every outcome.
//
// Only direct children of the folder are considered, and files that already
// carry a proxy or intermediate tag are never treated as sources. A per-folder
// lock under the state directory keeps two batches from encoding the same
// folder concurrently.
package batch
