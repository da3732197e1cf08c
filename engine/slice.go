package engine

// VisiblePrefix returns the leading step runes of word
// The step count is clamped to [0, len(word) in runes], so any input is valid
func VisiblePrefix(word string, step int) string {
	if step <= 0 {
		return ""
	}
	runes := []rune(word)
	if step >= len(runes) {
		return word
	}
	return string(runes[:step])
}
