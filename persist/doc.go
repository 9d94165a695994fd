// Package persist serializes a value to a file and reads it back.
//
// Key features:
//   - Write is atomic: the encoded bytes go to a temp file in the target
//     directory, which is then renamed over the destination.
//   - Read memory-maps the file read-only and decodes straight from the
//     mapping, so large documents are not copied into a heap buffer first.
//   - Two codecs: CBOR (default, compact binary) and YAML (human-editable).
//
// Usage:
//
//	err := persist.Write("state.cbor", state)
//	err  = persist.Read("state.cbor", &state)
//
//	err  = persist.Write("state.yaml", state, persist.WithCodec(persist.YAML))
//
// Every call logs at debug level through github.com/apex/log.
package persist
