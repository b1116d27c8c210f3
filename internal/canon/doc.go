// Package canon provides deterministic serialization of shape collections.
//
// Marshal produces RFC 8785 style canonical JSON: object keys ordered by
// UTF-16 code units, strings NFC-normalized, no HTML escaping, no insignificant
// whitespace. Floats and null are forbidden; real numbers are carried as
// strings (see Real) so that the same collection always yields the same bytes
// on every platform.
//
// Fingerprint hashes the canonical form of an ordered collection with a
// domain-separated SHA-256:
//
//	SHA256("shapes/collection/v1" || 0x00 || canonical_json)
//
// Two collections share a fingerprint exactly when they hold the same shapes
// in the same order, so reordering reports change it and pruning changes it.
package canon
