package tiktoken

import "testing"

func TestLoadEncodingRejectsUnknownName(t *testing.T) {
	_, err := LoadEncoding(EncodingName("not-a-real-encoding"))
	if err == nil {
		t.Fatalf("expected an error for an unknown encoding name")
	}
}

func TestSyntheticEncodingRoundTrips(t *testing.T) {
	enc, err := NewSyntheticCl100k()
	if err != nil {
		t.Fatalf("NewSyntheticCl100k: %v", err)
	}
	if enc.Name() != Cl100kBase {
		t.Fatalf("expected name %q, got %q", Cl100kBase, enc.Name())
	}
	text := "the weather today"
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
}

func TestSyntheticEncodingCountMatchesEncodeOrdinaryLength(t *testing.T) {
	enc, err := NewSyntheticCl100k()
	if err != nil {
		t.Fatalf("NewSyntheticCl100k: %v", err)
	}
	text := "San Francisco weather forecast"
	if got, want := enc.Count(text), len(enc.EncodeOrdinary(text)); got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
}

func TestSyntheticEncodingSpecialTokenAllowSet(t *testing.T) {
	enc, err := NewSyntheticCl100k()
	if err != nil {
		t.Fatalf("NewSyntheticCl100k: %v", err)
	}
	allowed := enc.SpecialTokens()
	if _, ok := allowed["<|endoftext|>"]; !ok {
		t.Fatalf("expected <|endoftext|> in special token set, got %v", allowed)
	}
	withSpecial := enc.EncodeWithSpecialTokens("hi<|endoftext|>bye")
	if len(withSpecial) == 0 {
		t.Fatalf("expected tokens")
	}
}
