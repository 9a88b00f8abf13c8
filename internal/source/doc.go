// Package source fetches the hiring document from a file or an HTTP endpoint.
//
// # Locations
//
// New picks the transport from the location string:
//
//   - http:// or https:// URLs use HTTP, a GET with a client timeout
//   - anything else is a file path; ".json", ".yaml" and ".yml" are accepted
//
// # Decoding
//
// Documents are decoded into hiring.Value trees without going through Go maps,
// so mapping keys keep the order they have in the file. JSON is read token by
// token; YAML is read through yaml.Node. Booleans and nulls become empty values.
// A repeated key keeps its first position and its last value.
//
// # Loading
//
// Loader wraps a Fetcher and returns flattened records. Concurrent Load calls
// share a single fetch. Any failure returns the error and no records.
package source
