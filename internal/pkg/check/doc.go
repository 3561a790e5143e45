// Package check validates loose quantity and price inputs.
//
// Input of any type is first coerced to a number by the rule in package
// numeric, then checked against the field's predicate. Outcomes are Result
// values so callers can show a rejection message to an end user without
// error-handling control flow.
package check
