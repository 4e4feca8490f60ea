package model

// contextSizes is a static model -> max context tokens table, the
// natural neighbor of the model-name -> encoding mapping in
// tiktoken-rs's model.rs. It has no interaction with the BPE core;
// values are product data, not something this module computes.
var contextSizes = map[string]int{
	"gpt-4o":              128000,
	"gpt-4o-mini":         128000,
	"gpt-4.1":             1047576,
	"gpt-4-turbo":         128000,
	"gpt-4-32k":           32768,
	"gpt-4":               8192,
	"gpt-3.5-turbo":       16385,
	"gpt-3.5-turbo-16k":   16385,
	"o1":                  200000,
	"o3":                  200000,
	"text-davinci-003":    4097,
	"text-davinci-002":    4097,
	"code-davinci-002":    8001,
	"davinci":             2049,
	"curie":               2049,
	"babbage":             2049,
	"ada":                 2049,
}

// ContextSizeForModel returns the maximum context length, in tokens,
// for a known model name. The lookup is an exact match only; unlike
// EncodingForModel there is no prefix fallback, since context windows
// vary between dated snapshots of the same model family in ways a
// prefix match would get wrong.
func ContextSizeForModel(name string) (int, bool) {
	n, ok := contextSizes[name]
	return n, ok
}
