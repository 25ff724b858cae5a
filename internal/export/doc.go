// Package export serialises liturgical events to JSON.
//
// The default "object" format is a single JSON object keyed by event name,
// written by hand so that field order and escaping are fixed. Two events
// with the same name produce two members with the same key; they are not
// merged.
// The "list" format writes a JSON array instead, for consumers that need
// every event without relying on duplicate keys.
package export
