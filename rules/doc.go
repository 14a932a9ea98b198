// Package rules implements the pluggable rule engine: independent,
// pure heuristic checks that each turn a normalized prompt into zero or
// more issues.
//
// The rule set is an open, ordered list — adding a rule means appending
// an implementation of Rule to the slice handed to the analyzer, no
// engine changes required:
//
//	ruleset := append(rules.Core(), myRule{})
//	issues := rules.Run(ruleset, normalized, ctx)
//
// Rules never see each other's output; removing one rule cannot change
// what another emits. Order only determines the final issue-list order.
package rules
