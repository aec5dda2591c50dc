package segment

import "strings"

// Normalize collapses every whitespace run to a single space and trims
// the ends. Segmentation always runs on normalized text.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Split cuts normalized text into overlapping windows of at most
// chunkSize runes. Consecutive windows share exactly overlap runes;
// the final window may be shorter and is never padded. Empty input
// yields no chunks.
func Split(text string, chunkSize int, overlap int) []string {
	clean := []rune(Normalize(text))
	if len(clean) == 0 || chunkSize <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		//the window must advance
		overlap = chunkSize - 1
	}

	var chunks []string
	i := 0
	for i < len(clean) {
		end := i + chunkSize
		if end > len(clean) {
			end = len(clean)
		}
		chunks = append(chunks, string(clean[i:end]))
		if end == len(clean) {
			break
		}
		i = end - overlap
	}
	return chunks
}
