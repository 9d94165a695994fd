// Package nyutils is a set of small, reusable data-structure utilities.
//
// The core is a generic, bounds-checked 2D container and the classic edit
// distance built on top of it:
//
//	matrix/      — Matrix[T]: row-major storage, Get/Set, Transpose, Slice, AddRow/AddColumn
//	levenshtein/ — Distance over any comparable elements, using a Matrix[int32] DP table
//
// Around it sit independent helpers with no shared state:
//
//	ring/    — fixed-capacity buffer with an O(1) running sum
//	randid/  — random alphanumeric ids
//	digest/  — MD5 content hashes
//	numeric/ — rounding to a multiple, integer ranges
//	persist/ — atomic CBOR/YAML file persistence with memory-mapped reads
//
// cmd/nyutils exposes all of them from the shell.
//
// Everything is synchronous and lock-free: each value has a single owner,
// and independent values can be used from different goroutines.
package nyutils
