package tiktoken

// EncodingName identifies one of the shipped tiktoken-compatible
// encodings.
type EncodingName string

// Supported encoding names (spec §6.2/§6.3).
const (
	R50kBase   EncodingName = "r50k_base"
	P50kBase   EncodingName = "p50k_base"
	P50kEdit   EncodingName = "p50k_edit"
	Cl100kBase EncodingName = "cl100k_base"
	O200kBase  EncodingName = "o200k_base"
	Llama3Base EncodingName = "llama3_base"
)
