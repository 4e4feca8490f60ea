package tiktoken

import "testing"

// TestNamedEncodingsEncodeDecodeRoundTrip exercises each named encoding against its
// real shipped vocabulary, when one is reachable (TIKTOKEN_ASSETS_DIR
// pointing at a local copy, or network access to the default mirror).
// Without either, these skip rather than fail: no .tiktoken asset data
// ships in this tree.
func TestNamedEncodingsEncodeDecodeRoundTrip(t *testing.T) {
	names := []EncodingName{R50kBase, P50kBase, P50kEdit, Cl100kBase, O200kBase, Llama3Base}
	for _, name := range names {
		name := name
		t.Run(string(name), func(t *testing.T) {
			enc, err := LoadEncoding(name)
			if err != nil {
				t.Skipf("encoding %s unavailable in this environment: %v", name, err)
			}
			text := "The quick brown fox jumps over the lazy dog."
			toks := enc.EncodeOrdinary(text)
			if len(toks) == 0 {
				t.Fatalf("expected at least one token")
			}
			got, err := enc.DecodeUTF8(toks)
			if err != nil {
				t.Fatalf("DecodeUTF8: %v", err)
			}
			if got != text {
				t.Fatalf("round trip mismatch: got %q, want %q", got, text)
			}
		})
	}
}

// TestLiteralTokenIDScenarios pins exact token-ID vectors from known
// reference encodings. Round-trip checks alone cannot catch a
// tokenization that is internally self-consistent but wrong — a
// tie-break regression or a pre-tokenization pattern swap still
// decodes back to the original text, it just uses the wrong tokens to
// do it. These vectors only verify against a real vocabulary.
func TestLiteralTokenIDScenarios(t *testing.T) {
	text := "This is a test         with a lot of spaces"
	cases := []struct {
		name EncodingName
		want []uint32
	}{
		{P50kBase, []uint32{1212, 318, 257, 1332, 50263, 351, 257, 1256, 286, 9029}},
		{R50kBase, []uint32{1212, 318, 257, 1332, 220, 220, 220, 220, 220, 220, 220, 220, 351, 257, 1256, 286, 9029}},
		{Cl100kBase, []uint32{2028, 374, 264, 1296, 260, 449, 264, 2763, 315, 12908}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.name), func(t *testing.T) {
			enc, err := LoadEncoding(tc.name)
			if err != nil {
				t.Skipf("encoding %s unavailable in this environment: %v", tc.name, err)
			}
			got := enc.EncodeWithSpecialTokens(text)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("token %d: got %d, want %d (full: got %v, want %v)", i, got[i], tc.want[i], got, tc.want)
				}
			}
		})
	}
}

func TestCl100kBaseEndOfTextRank(t *testing.T) {
	enc, err := LoadEncoding(Cl100kBase)
	if err != nil {
		t.Skipf("cl100k_base unavailable in this environment: %v", err)
	}
	toks := enc.EncodeWithSpecialTokens("…<|endoftext|>")
	if toks[len(toks)-1] != 100257 {
		t.Fatalf("expected trailing endoftext rank 100257, got %v", toks)
	}
}

func TestNamedEncodingsRecognizeEndOfText(t *testing.T) {
	enc, err := LoadEncoding(Cl100kBase)
	if err != nil {
		t.Skipf("cl100k_base unavailable in this environment: %v", err)
	}
	toks := enc.EncodeWithSpecialTokens("hello<|endoftext|>world")
	found := false
	for _, tok := range toks {
		if enc.IsSpecialToken(tok) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a recognized special token in %v", toks)
	}
}
