package tiktoken

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/arcbpe/tiktoken/internal/assets"
	"github.com/arcbpe/tiktoken/tokenizer"
)

// Encoding is a thin, named wrapper around a built *tokenizer.Core. It
// adds nothing to the core's semantics; every method delegates directly.
// newEncoding also sets up a strings.Builder pool and a bytes.Buffer
// pool; no method of Encoding currently draws from them.
type Encoding struct {
	name EncodingName
	core *tokenizer.Core

	builderPool sync.Pool
	bufferPool  sync.Pool
}

// Name returns the encoding's canonical name.
func (e *Encoding) Name() EncodingName { return e.name }

// EncodeOrdinary encodes text recognizing no special tokens.
func (e *Encoding) EncodeOrdinary(text string) []uint32 {
	return e.core.EncodeOrdinary(text)
}

// Encode encodes text, recognizing only the special tokens named in
// allowedSpecial; any other special-token-shaped substring is encoded
// as ordinary bytes.
func (e *Encoding) Encode(text string, allowedSpecial map[string]struct{}) []uint32 {
	toks, _ := e.core.Encode(text, allowedSpecial)
	return toks
}

// EncodeWithSpecialTokens encodes text, recognizing every special token
// this encoding defines.
func (e *Encoding) EncodeWithSpecialTokens(text string) []uint32 {
	return e.core.EncodeWithSpecialTokens(text)
}

// Count returns len(EncodeOrdinary(text)) without retaining the token
// slice, a convenience for callers that only need a token count.
func (e *Encoding) Count(text string) int {
	return len(e.core.EncodeOrdinary(text))
}

// DecodeBytes decodes tokens into raw bytes.
func (e *Encoding) DecodeBytes(tokens []uint32) ([]byte, error) {
	return e.core.DecodeBytes(tokens)
}

// DecodeUTF8 decodes tokens into a UTF-8 string.
func (e *Encoding) DecodeUTF8(tokens []uint32) (string, error) {
	return e.core.DecodeUTF8(tokens)
}

// SplitByToken encodes text and returns the lossy-UTF-8 decoding of
// each individual token, in order.
func (e *Encoding) SplitByToken(text string, allowedSpecial map[string]struct{}) ([]string, error) {
	return e.core.SplitByToken(text, allowedSpecial)
}

// IsSpecialToken reports whether id is one of this encoding's special
// tokens.
func (e *Encoding) IsSpecialToken(id uint32) bool {
	return e.core.IsSpecialToken(id)
}

// SpecialTokens returns the literal form of every special token this
// encoding defines, suitable for passing to Encode or SplitByToken as
// an allow-set.
func (e *Encoding) SpecialTokens() map[string]struct{} {
	return e.core.SpecialTokens()
}

func newEncoding(name EncodingName, core *tokenizer.Core) *Encoding {
	return &Encoding{
		name:        name,
		core:        core,
		builderPool: sync.Pool{New: func() any { return &strings.Builder{} }},
		bufferPool:  sync.Pool{New: func() any { return &bytes.Buffer{} }},
	}
}

// LoadEncoding builds the named encoding, loading its merge table via
// internal/assets and wiring the pattern and special tokens spec §6.2
// and §6.3 define.
func LoadEncoding(name EncodingName) (*Encoding, error) {
	switch name {
	case R50kBase:
		return loadR50kBase()
	case P50kBase:
		return loadP50kBase()
	case P50kEdit:
		return loadP50kEdit()
	case Cl100kBase:
		return loadCl100kBase()
	case O200kBase:
		return loadO200kBase()
	case Llama3Base:
		return loadLlama3Base()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}

func loadR50kBase() (*Encoding, error) {
	pairs, err := assets.Load(string(R50kBase))
	if err != nil {
		return nil, err
	}
	core, err := tokenizer.Build(pairs, tokenizer.R50kSpecials(), tokenizer.PatternR50k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(R50kBase, core), nil
}

func loadP50kBase() (*Encoding, error) {
	pairs, err := assets.Load(string(P50kBase))
	if err != nil {
		return nil, err
	}
	core, err := tokenizer.Build(pairs, tokenizer.R50kSpecials(), tokenizer.PatternR50k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(P50kBase, core), nil
}

func loadP50kEdit() (*Encoding, error) {
	pairs, err := assets.Load(string(P50kBase))
	if err != nil {
		return nil, err
	}
	core, err := tokenizer.Build(pairs, tokenizer.P50kEditSpecials(), tokenizer.PatternR50k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(P50kEdit, core), nil
}

func loadCl100kBase() (*Encoding, error) {
	pairs, err := assets.Load(string(Cl100kBase))
	if err != nil {
		return nil, err
	}
	core, err := tokenizer.Build(pairs, tokenizer.Cl100kSpecials(), tokenizer.PatternCl100k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(Cl100kBase, core), nil
}

func loadO200kBase() (*Encoding, error) {
	pairs, err := assets.Load(string(O200kBase))
	if err != nil {
		return nil, err
	}
	core, err := tokenizer.Build(pairs, tokenizer.O200kSpecials(), tokenizer.PatternO200k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(O200kBase, core), nil
}

func loadLlama3Base() (*Encoding, error) {
	pairs, err := assets.Load(string(Llama3Base))
	if err != nil {
		return nil, err
	}
	specials := tokenizer.Llama3Specials(len(pairs))
	core, err := tokenizer.Build(pairs, specials, tokenizer.PatternCl100k, tokenizer.Options{})
	if err != nil {
		return nil, err
	}
	return newEncoding(Llama3Base, core), nil
}
