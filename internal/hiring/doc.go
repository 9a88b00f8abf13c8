// Package hiring models the hiring document and turns it into a flat,
// searchable list of records.
//
// # Document shape
//
// A document is a mapping with a single "data" field holding up to five
// collections keyed by entity type:
//
//	{"data": {
//	  "company":        {"<key>": {...}},
//	  "job_posting":    {"<key>": {...}},
//	  "promise":        {"<key>": {...}},
//	  "vouch":          {"<key>": {...}},
//	  "personal_vouch": {"<key>": {...}}
//	}}
//
// Companies may nest "job_postings"; job postings may nest "promises" and
// "personal_vouches". Any collection may be absent.
//
// # Values
//
// Decoded nodes are Values: Empty, Scalar (string or number), Sequence or
// Mapping. Mappings keep the key order of the source file, which fixes the
// order records are emitted in.
//
// # Records
//
// Flatten emits one Record per entity. A record's SearchText holds every
// scalar of the entity's own data (not its parents), lowercased, down to a
// depth of five. Filter narrows records by kind and then by substring.
package hiring
