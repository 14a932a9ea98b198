// Package report defines the value types that make up a prompt analysis
// report: issues, scores, token estimates, optional cost projections, and
// the PromptReport aggregate.
//
// Reports are built once by the analyzer and never mutated afterwards.
// Optional parts (cost estimate, issue evidence) are pointers or omitted
// map fields, never zero-valued placeholders: an absent pricing profile
// produces an absent cost estimate.
//
// Serialization is plain JSON with stable snake_case field names:
//
//	out, err := rep.JSON()
//
// The matching JSON schema is available via Schema().
package report
