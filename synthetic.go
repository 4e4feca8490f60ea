package tiktoken

import "github.com/arcbpe/tiktoken/tokenizer"

// commonBigrams is a small curated set of frequent English letter
// pairs, used only to give a synthetic merge table enough multi-round
// merge work to be representative of real vocab files; it is not
// itself a real tiktoken vocabulary.
var commonBigrams = []string{
	"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
	"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
	"st", "to", "nt", "ng", " t", " a", " s", " w", "ve", "co",
}

// NewSyntheticCl100k builds a cl100k_base-shaped encoding (pattern and
// special tokens match cl100k_base exactly) from a small synthetic
// merge table instead of a downloaded asset. It exists so benchmarks
// and examples can exercise the encode/decode path without network
// access or a populated asset cache; it is not a substitute for the
// real cl100k_base vocabulary and its token ids do not match OpenAI's.
func NewSyntheticCl100k() (*Encoding, error) {
	pairs := make([]tokenizer.TokenPair, 0, 256+len(commonBigrams))
	for i := 0; i < 256; i++ {
		pairs = append(pairs, tokenizer.TokenPair{Bytes: []byte{byte(i)}, Rank: tokenizer.Rank(i)})
	}
	for i, bg := range commonBigrams {
		pairs = append(pairs, tokenizer.TokenPair{Bytes: []byte(bg), Rank: tokenizer.Rank(256 + i)})
	}
	core, err := tokenizer.Build(pairs, tokenizer.Cl100kSpecials(), tokenizer.PatternCl100k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(Cl100kBase, core), nil
}
