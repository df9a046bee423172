// Package transform holds the pure string reformatters applied to form fields
// after they pass validation.
//
// Every function is total: malformed input produces a best-effort string and
// never an error. Callers are expected to gate calls behind a validation
// predicate, so nonsensical output for malformed input is acceptable.
//
// Basic usage:
//
//	transform.Currency("$1,234.5")   // "1234.50"
//	transform.PostalCode("a0a0a0")   // "A0A 0A0"
//	transform.Phone("514 555 1234")  // "(514)555-1234"
//
// Functions compose with Compose:
//
//	clean := transform.Compose(transform.Trim, transform.Lower)
package transform
