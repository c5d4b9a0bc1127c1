// Package sanitizer normalizes customer input before validation and storage.
//
// All functions are idempotent: applying them twice gives the same result as
// applying them once. Invalid input yields an empty value rather than an
// error, and the validator downstream reports it.
//
// Normalization includes:
//   - Phone numbers: E.164 format (+[country][number]), with a default region for local numbers
//   - Addresses: whitespace collapsed, leading/trailing spaces trimmed
//   - Starters: trimmed, empty values and duplicates removed
package sanitizer
