// Package analyzer orchestrates the prompt analysis pipeline:
// configuration resolution, normalization, token counting, rule
// evaluation, and derivation of scores, waste, suggestions, and cost.
//
// Typical use:
//
//	a := analyzer.New(nil, nil, nil) // built-in config, registry, rules
//	rep, err := a.Analyze("Summarize this document.", analyzer.Options{})
//
// With a loaded config and custom rules:
//
//	cfg, _ := config.Load("promptanalysis.yml")
//	a := analyzer.New(cfg, tokenizer.DefaultRegistry(), append(rules.Core(), myRule{}))
//	rep, err := a.AnalyzeMessages(msgs, chunks, analyzer.Options{Model: "gpt-4o-mini"})
//
// Analysis is synchronous and side-effect-free; an Analyzer may be
// shared across goroutines. The only error an analysis can return is
// tokenizer.ErrUnknownTokenizer for an unregistered tokenizer name —
// every other input, including empty prompts, produces a full report.
package analyzer
