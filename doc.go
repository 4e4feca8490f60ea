// Package tiktoken provides a pure Go implementation of the OpenAI
// tiktoken byte-pair encoding scheme.
//
// It ships the rank-based BPE merge algorithm, a special-token-aware
// scanner, and named, ready-to-use encodings (r50k_base, p50k_base,
// p50k_edit, cl100k_base, o200k_base, and a Llama-3 variant) built on
// top of the lower-level github.com/arcbpe/tiktoken/tokenizer package.
// Asset loading, model-name mapping, and context-size tables are kept
// in separate, optional packages (internal/assets, model) since none of
// them are part of the core tokenization contract.
package tiktoken
