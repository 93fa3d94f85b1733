package content

import (
	"unicode"
	"unicode/utf8"
)

// TextProcessor handles text-related operations
type TextProcessor struct{}

// NewTextProcessor creates a new text processor
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// EstimateAudioDuration estimates the spoken duration of text in seconds
func (tp *TextProcessor) EstimateAudioDuration(text string) float64 {
	// count characters excluding whitespace
	charCount := 0
	for _, char := range text {
		if !unicode.IsSpace(char) {
			charCount++
		}
	}

	// estimate word count
	estimatedWords := float64(charCount) / avgCharsPerWordEnglish

	// calculate duration in seconds
	return estimatedWords / avgWordsPerMinuteEnglish * 60.0
}

// EstimateTotalDuration estimates the total spoken duration of all lines in seconds
func (tp *TextProcessor) EstimateTotalDuration(lines []string) float64 {
	var totalDuration float64
	for _, line := range lines {
		totalDuration += tp.EstimateAudioDuration(line)
	}
	return totalDuration
}

// TruncateString truncates a string to the specified length and adds "..." if truncated
// it ensures UTF-8 characters are not broken
func (tp *TextProcessor) TruncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength]) + "..."
}
