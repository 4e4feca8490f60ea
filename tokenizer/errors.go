package tokenizer

import "errors"

// Sentinel errors returned by EncoderState construction and lookup.
// Callers should compare with errors.Is; messages wrap these with
// additional context via fmt.Errorf("%w: ...").
var (
	// ErrInvalidPattern is returned when the pre-tokenization pattern
	// fails to compile.
	ErrInvalidPattern = errors.New("tokenizer: invalid pre-tokenization pattern")

	// ErrDuplicateRank is returned when two distinct token byte strings
	// in the merge table are registered under the same rank.
	ErrDuplicateRank = errors.New("tokenizer: duplicate rank in merge table")

	// ErrDuplicateTokenBytes is returned when the same token byte string
	// appears more than once in the merge table.
	ErrDuplicateTokenBytes = errors.New("tokenizer: duplicate token bytes in merge table")

	// ErrSpecialOverlap is returned when a special token's literal
	// bytes are already a key of the ordinary merge table.
	ErrSpecialOverlap = errors.New("tokenizer: special token overlaps ordinary merge table")

	// ErrUnknownRank is returned when decoding encounters a rank that is
	// present in neither the merge table nor the special token set.
	ErrUnknownRank = errors.New("tokenizer: unknown rank")

	// ErrInvalidUTF8 is returned by decode_utf8 when the decoded byte
	// sequence is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("tokenizer: decoded bytes are not valid utf-8")
)
