package race

import "time"

// Stats is a point-in-time snapshot of race performance. All fields are
// derived; computing a Stats never mutates the session.
type Stats struct {
	WPM          float64
	RawWPM       float64
	Accuracy     float64
	Progress     float64
	CorrectChars int
	Keystrokes   int
	Elapsed      time.Duration
}

// Stats derives the current performance numbers. Safe to call on every
// render tick.
func (s *Session) Stats() Stats {
	correct := correctChars(s.typed, s.target)
	minutes := s.Elapsed().Minutes()
	return Stats{
		WPM:          wordsPerMinute(correct, minutes),
		RawWPM:       wordsPerMinute(len(s.typed), minutes),
		Accuracy:     accuracy(correct, s.keystrokes),
		Progress:     progress(len(s.typed), len(s.target)),
		CorrectChars: correct,
		Keystrokes:   s.keystrokes,
		Elapsed:      s.Elapsed(),
	}
}

func correctChars(typed, target []rune) int {
	n := len(typed)
	if len(target) < n {
		n = len(target)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if typed[i] == target[i] {
			correct++
		}
	}
	return correct
}

// wordsPerMinute uses the standard 5-characters-per-word convention.
func wordsPerMinute(chars int, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return (float64(chars) / 5.0) / minutes
}

// accuracy is 100 before any keystroke, by definition rather than NaN.
func accuracy(correct, keystrokes int) float64 {
	if keystrokes == 0 {
		return 100
	}
	return float64(correct) / float64(keystrokes) * 100
}

func progress(typed, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(typed) / float64(target) * 100
}
