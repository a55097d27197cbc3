package model

// Clause represents one contiguous review unit of contract text
type Clause struct {
	ID          int    `json:"id"`           // 1-based, assigned in document order
	Text        string `json:"text"`         // Verbatim substring of the source document
	StartOffset int    `json:"start_offset"` // Byte offset into the original text
	EndOffset   int    `json:"end_offset"`   // Byte offset one past the last byte
}
