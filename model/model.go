// Package model maps OpenAI model names to the tiktoken encoding they
// use. It is a supplemental, separately-testable package: the core
// tokenizer and the root tiktoken package never import it.
package model

import (
	"strings"

	tiktoken "github.com/arcbpe/tiktoken"
)

// modelMapping pairs a model name (or prefix) with the encoding it uses.
type modelMapping struct {
	model    string
	encoding tiktoken.EncodingName
}

// exactModelToEncoding mirrors MODEL_TO_TOKENIZER from
// tiktoken-rs/src/tokenizer.rs, kept in the same order as upstream.
var exactModelToEncoding = []modelMapping{
	{"o1", tiktoken.O200kBase},
	{"o3", tiktoken.O200kBase},
	{"gpt-4.1", tiktoken.O200kBase},
	{"chatgpt-4o-latest", tiktoken.O200kBase},
	{"gpt-4o", tiktoken.O200kBase},
	{"gpt-4", tiktoken.Cl100kBase},
	{"gpt-3.5-turbo", tiktoken.Cl100kBase},
	{"gpt-3.5", tiktoken.Cl100kBase},
	{"gpt-35-turbo", tiktoken.Cl100kBase},
	{"davinci-002", tiktoken.Cl100kBase},
	{"babbage-002", tiktoken.Cl100kBase},
	{"text-embedding-ada-002", tiktoken.Cl100kBase},
	{"text-embedding-3-small", tiktoken.Cl100kBase},
	{"text-embedding-3-large", tiktoken.Cl100kBase},
	{"text-davinci-003", tiktoken.P50kBase},
	{"text-davinci-002", tiktoken.P50kBase},
	{"text-davinci-001", tiktoken.R50kBase},
	{"text-curie-001", tiktoken.R50kBase},
	{"text-babbage-001", tiktoken.R50kBase},
	{"text-ada-001", tiktoken.R50kBase},
	{"davinci", tiktoken.R50kBase},
	{"curie", tiktoken.R50kBase},
	{"babbage", tiktoken.R50kBase},
	{"ada", tiktoken.R50kBase},
	{"code-davinci-002", tiktoken.P50kBase},
	{"code-davinci-001", tiktoken.P50kBase},
	{"code-cushman-002", tiktoken.P50kBase},
	{"code-cushman-001", tiktoken.P50kBase},
	{"davinci-codex", tiktoken.P50kBase},
	{"cushman-codex", tiktoken.P50kBase},
	{"text-davinci-edit-001", tiktoken.P50kEdit},
	{"code-davinci-edit-001", tiktoken.P50kEdit},
	{"text-similarity-davinci-001", tiktoken.R50kBase},
	{"text-similarity-curie-001", tiktoken.R50kBase},
	{"text-similarity-babbage-001", tiktoken.R50kBase},
	{"text-similarity-ada-001", tiktoken.R50kBase},
	{"text-search-davinci-doc-001", tiktoken.R50kBase},
	{"text-search-curie-doc-001", tiktoken.R50kBase},
	{"text-search-babbage-doc-001", tiktoken.R50kBase},
	{"text-search-ada-doc-001", tiktoken.R50kBase},
	{"code-search-babbage-code-001", tiktoken.R50kBase},
	{"code-search-ada-code-001", tiktoken.R50kBase},
	// gpt2 has no dedicated encoding in this module; it shares r50k_base's
	// merge table and pattern in the upstream implementation.
	{"gpt2", tiktoken.R50kBase},
	{"gpt-2", tiktoken.R50kBase},
	// llama3 family, not present in the upstream Rust crate's table but a
	// natural addition given this module ships a Llama-3 encoding.
	{"llama-3", tiktoken.Llama3Base},
	{"llama3", tiktoken.Llama3Base},
}

// prefixModelToEncoding mirrors MODEL_PREFIX_TO_TOKENIZER.
var prefixModelToEncoding = []modelMapping{
	{"o1-", tiktoken.O200kBase},
	{"o3-", tiktoken.O200kBase},
	{"o4-", tiktoken.O200kBase},
	{"gpt-4.1-", tiktoken.O200kBase},
	{"chatgpt-4o-", tiktoken.O200kBase},
	{"gpt-4o-", tiktoken.O200kBase},
	{"gpt-4-", tiktoken.Cl100kBase},
	{"gpt-3.5-turbo-", tiktoken.Cl100kBase},
	{"gpt-35-turbo-", tiktoken.Cl100kBase},
	{"ft:gpt-4o", tiktoken.O200kBase},
	{"ft:gpt-4", tiktoken.Cl100kBase},
	{"ft:gpt-3.5-turbo", tiktoken.Cl100kBase},
	{"ft:davinci-002", tiktoken.Cl100kBase},
	{"ft:babbage-002", tiktoken.Cl100kBase},
	{"llama-3-", tiktoken.Llama3Base},
	{"llama3-", tiktoken.Llama3Base},
}

// EncodingForModel returns the encoding a model name uses. It checks
// exactModelToEncoding first, then falls back to the first entry of
// prefixModelToEncoding, in table order, whose prefix matches, mirroring
// get_tokenizer's exact-then-prefix resolution order.
func EncodingForModel(name string) (tiktoken.EncodingName, bool) {
	for _, m := range exactModelToEncoding {
		if m.model == name {
			return m.encoding, true
		}
	}
	for _, m := range prefixModelToEncoding {
		if strings.HasPrefix(name, m.model) {
			return m.encoding, true
		}
	}
	return "", false
}
