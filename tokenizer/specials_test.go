package tokenizer

import (
	"errors"
	"testing"
)

func tinyMergeTable(t *testing.T) *MergeTable {
	t.Helper()
	pairs := make([]TokenPair, 0, 256)
	for i := 0; i < 256; i++ {
		pairs = append(pairs, TokenPair{Bytes: []byte{byte(i)}, Rank: Rank(i)})
	}
	mt, err := newMergeTable(pairs)
	if err != nil {
		t.Fatalf("newMergeTable: %v", err)
	}
	return mt
}

func TestNewSpecialTokenSetRejectsOverlapWithMergeTable(t *testing.T) {
	mt := tinyMergeTable(t)
	_, err := newSpecialTokenSet(map[string]Rank{string(rune(65)): 300}, mt)
	if !errors.Is(err, ErrSpecialOverlap) {
		t.Fatalf("expected ErrSpecialOverlap, got %v", err)
	}
}

func TestNewSpecialTokenSetEmptySetNeverMatches(t *testing.T) {
	mt := tinyMergeTable(t)
	st, err := newSpecialTokenSet(nil, mt)
	if err != nil {
		t.Fatalf("newSpecialTokenSet: %v", err)
	}
	m, _ := st.regex.FindStringMatch("")
	if m != nil {
		t.Fatalf("expected no match against empty alternation, got %v", m)
	}
	m, _ = st.regex.FindStringMatch("<|endoftext|>")
	if m != nil {
		t.Fatalf("expected no match against empty alternation, got %v", m)
	}
}

func TestR50kSpecialsMatchesLiteral(t *testing.T) {
	mt := tinyMergeTable(t)
	st, err := newSpecialTokenSet(R50kSpecials(), mt)
	if err != nil {
		t.Fatalf("newSpecialTokenSet: %v", err)
	}
	m, _ := st.regex.FindStringMatch("<|endoftext|>")
	if m == nil || m.String() != "<|endoftext|>" {
		t.Fatalf("expected endoftext match, got %v", m)
	}
	if rank := st.encoder["<|endoftext|>"]; rank != 50256 {
		t.Fatalf("expected rank 50256, got %d", rank)
	}
}

func TestLlama3SpecialsAssignsSequentialRanksFromBase(t *testing.T) {
	const numBase = 128000
	specials := Llama3Specials(numBase)
	if len(specials) != 10+(llama3NumReservedTotal-2*llama3FirstReservedIdx) {
		t.Fatalf("unexpected special count: %d", len(specials))
	}
	if specials[litBeginOfText] != Rank(numBase) {
		t.Fatalf("expected begin_of_text at rank %d, got %d", numBase, specials[litBeginOfText])
	}
	if _, ok := specials["<|reserved_special_token_250|>"]; !ok {
		t.Fatalf("expected reserved_special_token_250 to be the last generated reserved slot")
	}
	if _, ok := specials["<|reserved_special_token_251|>"]; ok {
		t.Fatalf("reserved_special_token_251 must not be generated, llama3.rs stops at index 250")
	}
	seen := make(map[Rank]struct{}, len(specials))
	for lit, rank := range specials {
		if _, dup := seen[rank]; dup {
			t.Fatalf("duplicate rank %d for %q", rank, lit)
		}
		seen[rank] = struct{}{}
		if int(rank) < numBase {
			t.Fatalf("rank %d for %q is below numBase %d", rank, lit, numBase)
		}
	}
}
