package race

// CharClass classifies one target character for rendering.
type CharClass int

const (
	// ClassUntyped marks characters beyond the cursor.
	ClassUntyped CharClass = iota
	// ClassCorrect marks typed characters matching the target.
	ClassCorrect
	// ClassIncorrect marks typed characters differing from the target.
	ClassIncorrect
	// ClassPending marks the next character to type (the cursor).
	ClassPending
)

// Classes returns one CharClass per target character, reflecting the
// current typed buffer.
func (s *Session) Classes() []CharClass {
	out := make([]CharClass, len(s.target))
	for i := range s.target {
		switch {
		case i < len(s.typed) && s.typed[i] == s.target[i]:
			out[i] = ClassCorrect
		case i < len(s.typed):
			out[i] = ClassIncorrect
		case i == len(s.typed):
			out[i] = ClassPending
		default:
			out[i] = ClassUntyped
		}
	}
	return out
}
