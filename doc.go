// Package promptlint analyzes natural-language prompts intended for LLM
// calls and produces structured reports: quality scores, token and cost
// estimates, and a checklist of detected issues with suggested fixes.
//
// The module never calls a language model; tokenization is a
// deterministic heuristic and reports are plain values the caller owns.
// Each subpackage can be used independently:
//
//   - prompt: message normalization into canonical text views
//   - tokenizer: token estimation behind a registry of named tokenizers
//   - rules: pluggable, pure heuristic checks producing issues
//   - config: model profiles, pricing, and override resolution (YAML/TOML)
//   - analyzer: the orchestrator tying the pipeline together
//   - report: the report value types and their JSON shape
//
// # Quick Start
//
//	a := analyzer.New(nil, nil, nil)
//	rep, err := a.Analyze("Summarize this document.", analyzer.Options{})
//	if err != nil {
//	    return err
//	}
//	out, _ := rep.JSON()
//
// The cmd/promptlint binary wraps the same pipeline for shell use:
//
//	promptlint analyze prompt.txt --json --fail-on high
//
// # Design Philosophy
//
//   - Pure functions over immutable values; analyses are reentrant and
//     need no synchronization
//   - Interfaces for extensibility (Rule, Tokenizer), concrete types for
//     results
//   - Fail loud only where silence would corrupt results (unknown
//     tokenizers); default everything else
package promptlint
