// Package readability scores text difficulty from letter, word and sentence counts.
package readability

import (
	"fmt"
	"math"
	"strings"
)

// WordsPerMinute is the reading speed used for reading time estimates.
const WordsPerMinute = 250

// Target selects the audience the readability thresholds are tuned for.
type Target string

// Reading level targets.
const (
	Accessible Target = "ACCESSIBLE"
	Normal     Target = "NORMAL"
	Technical  Target = "TECHNICAL"
)

// Targets lists the recognized targets in display order.
var Targets = []Target{Accessible, Normal, Technical}

// Thresholds drive the difficulty classification for one target.
type Thresholds struct {
	TooFewWordCount          int
	HardReadabilityLevel     int
	VeryHardReadabilityLevel int
}

var thresholds = map[Target]Thresholds{
	Accessible: {TooFewWordCount: 8, HardReadabilityLevel: 8, VeryHardReadabilityLevel: 12},
	Normal:     {TooFewWordCount: 14, HardReadabilityLevel: 10, VeryHardReadabilityLevel: 14},
	Technical:  {TooFewWordCount: 14, HardReadabilityLevel: 14, VeryHardReadabilityLevel: 18},
}

// ParseTarget maps a setting value to a Target. Unknown or empty values fall back to Normal.
func ParseTarget(value string) Target {
	t := Target(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := thresholds[t]; ok {
		return t
	}
	return Normal
}

// ValidateTarget is like ParseTarget but rejects unknown non-empty values.
func ValidateTarget(value string) (Target, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Normal, nil
	}
	t := Target(strings.ToUpper(trimmed))
	if _, ok := thresholds[t]; !ok {
		return Normal, fmt.Errorf("unknown reading level target %q (expected ACCESSIBLE, NORMAL or TECHNICAL)", value)
	}
	return t, nil
}

// Thresholds returns the classification thresholds for the target.
func (t Target) Thresholds() Thresholds {
	if th, ok := thresholds[t]; ok {
		return th
	}
	return thresholds[Normal]
}

// Class is the categorical difficulty of a text.
type Class string

// Difficulty classes.
const (
	ClassNormal   Class = "normal"
	ClassHard     Class = "hard"
	ClassVeryHard Class = "very_hard"
)

// ReadingLevel approximates a US grade level from average word length and
// average sentence length. It returns 0 when words or sentences is zero.
func ReadingLevel(letters, words, sentences int) int {
	if words == 0 || sentences == 0 {
		return 0
	}
	score := float64(letters)/float64(words)*4.71 +
		float64(words)/float64(sentences)*0.5 -
		21.43
	level := int(math.Round(score))
	if level < 0 {
		return 0
	}
	return level
}

// Classify maps a reading level to a difficulty class. Texts shorter than
// the target's too-few-words count are always normal.
func Classify(level, wordCount int, target Target) Class {
	th := target.Thresholds()
	switch {
	case wordCount < th.TooFewWordCount:
		return ClassNormal
	case level >= th.HardReadabilityLevel && level < th.VeryHardReadabilityLevel:
		return ClassHard
	case level >= th.VeryHardReadabilityLevel:
		return ClassVeryHard
	default:
		return ClassNormal
	}
}

// ReadingTime estimates the reading time in seconds.
func ReadingTime(words int) float64 {
	return float64(words) / WordsPerMinute * 60
}

// Score computes the reading level and class in one call.
func Score(letters, words, sentences int, target Target) (int, Class) {
	level := ReadingLevel(letters, words, sentences)
	return level, Classify(level, words, target)
}
