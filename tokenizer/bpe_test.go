package tokenizer

import (
	"reflect"
	"testing"
)

// byteTable builds a trivial merge table: one rank per byte value 0-255
// plus any extra multi-byte entries, letting tests reason exactly about
// which merges should fire.
func byteTable(extra ...TokenPair) []TokenPair {
	pairs := make([]TokenPair, 0, 256+len(extra))
	for i := 0; i < 256; i++ {
		pairs = append(pairs, TokenPair{Bytes: []byte{byte(i)}, Rank: Rank(i)})
	}
	pairs = append(pairs, extra...)
	return pairs
}

func buildTestCore(t *testing.T, specials map[string]Rank, extra ...TokenPair) *coreBPE {
	t.Helper()
	core, err := buildCoreBPE(byteTable(extra...), specials, PatternCl100k, nil, 4)
	if err != nil {
		t.Fatalf("buildCoreBPE: %v", err)
	}
	return core
}

func TestEncodeOrdinaryMergesGreedilyLeftmostMinimum(t *testing.T) {
	// "ab" and "bc" both mergeable; "ab" has the lower rank and starts
	// first, so it must win even though rank alone would also pick it.
	core := buildTestCore(t, nil,
		TokenPair{Bytes: []byte("ab"), Rank: 256},
		TokenPair{Bytes: []byte("bc"), Rank: 257},
	)
	toks := core.EncodeOrdinary("abc")
	want := []uint32{256, 'c'}
	if !reflect.DeepEqual(toks, want) {
		t.Fatalf("got %v, want %v", toks, want)
	}
}

func TestEncodeOrdinaryRecognizesNoSpecialTokens(t *testing.T) {
	core := buildTestCore(t, R50kSpecials())
	toks := core.EncodeOrdinary("<|endoftext|>")
	for _, tok := range toks {
		if core.IsSpecialToken(tok) {
			t.Fatalf("EncodeOrdinary must never emit a special token, got %v", toks)
		}
	}
}

func TestEncodeWithSpecialTokensRecognizesConfiguredSpecials(t *testing.T) {
	core := buildTestCore(t, R50kSpecials())
	toks := core.EncodeWithSpecialTokens("hi<|endoftext|>bye")
	found := false
	for _, tok := range toks {
		if tok == 50256 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected endoftext rank 50256 in %v", toks)
	}
}

func TestEncodeSkipsDisallowedSpecialAsOrdinaryBytes(t *testing.T) {
	core := buildTestCore(t, R50kSpecials())
	toks, _ := core.Encode("<|endoftext|>", map[string]struct{}{})
	for _, tok := range toks {
		if tok == 50256 {
			t.Fatalf("disallowed special must not be recognized, got %v", toks)
		}
	}
	// the literal bytes must still round-trip through ordinary encoding.
	bs, err := core.DecodeBytes(toks)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if string(bs) != "<|endoftext|>" {
		t.Fatalf("got %q, want the literal bytes back", bs)
	}
}

func TestEncodeAllowSetMonotonicity(t *testing.T) {
	core := buildTestCore(t, R50kSpecials())
	text := "a<|endoftext|>b"
	disallowed, _ := core.Encode(text, nil)
	allowed, _ := core.Encode(text, map[string]struct{}{"<|endoftext|>": {}})
	if len(allowed) >= len(disallowed) {
		t.Fatalf("allowing the special should produce fewer tokens than skipping it: allowed=%v disallowed=%v", allowed, disallowed)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	core := buildTestCore(t, R50kSpecials(),
		TokenPair{Bytes: []byte("th"), Rank: 256},
		TokenPair{Bytes: []byte("he"), Rank: 257},
	)
	text := "the theory of everything"
	first := core.EncodeOrdinary(text)
	for i := 0; i < 5; i++ {
		if got := core.EncodeOrdinary(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("encoding not deterministic: run %d got %v, want %v", i, got, first)
		}
	}
}

func TestDecodeOrdinaryRoundTrip(t *testing.T) {
	core := buildTestCore(t, nil,
		TokenPair{Bytes: []byte("th"), Rank: 256},
		TokenPair{Bytes: []byte("he"), Rank: 257},
	)
	text := "the weather in theory"
	toks := core.EncodeOrdinary(text)
	got, err := core.DecodeUTF8(toks)
	if err != nil {
		t.Fatalf("DecodeUTF8: %v", err)
	}
	if got != text {
		t.Fatalf("round trip mismatch: got %q, want %q", got, text)
	}
}

func TestByteTableCoversEveryByteValue(t *testing.T) {
	core := buildTestCore(t, nil)
	for i := 0; i < 256; i++ {
		piece := string([]byte{byte(i)})
		if _, ok := core.merge.encoder[piece]; !ok {
			t.Fatalf("byte %d has no single-byte token", i)
		}
	}
}
