// Package tokenizer provides token-count estimation behind a swappable
// interface, plus a registry for resolving tokenizers by name.
//
// The registry is a value you construct and inject, not package state:
//
//	reg := tokenizer.DefaultRegistry()       // "approx" pre-registered
//	reg.Register(myTokenizer)                // add your own
//	tok, err := reg.Get("approx")
//
// Lookup of an unregistered name fails with ErrUnknownTokenizer rather
// than falling back silently — mis-tokenizing would corrupt every token
// and cost figure derived downstream.
//
// The built-in Approx tokenizer estimates ~1.3 tokens per word with a
// small punctuation penalty and a fixed 4-token overhead per chat
// message. It is deliberately approximate; see Approx for the contract.
package tokenizer
