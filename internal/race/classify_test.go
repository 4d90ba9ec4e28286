package race

import "testing"

func TestClassesFreshSession(t *testing.T) {
	s := newTestSession(t, "ab")
	classes := s.Classes()
	if classes[0] != ClassPending {
		t.Fatalf("expected pending cursor at index 0, got %v", classes[0])
	}
	if classes[1] != ClassUntyped {
		t.Fatalf("expected untyped at index 1, got %v", classes[1])
	}
}

func TestClassesCorrectAndPending(t *testing.T) {
	s := newTestSession(t, "ab")
	s.TypeChar('a')
	classes := s.Classes()
	if classes[0] != ClassCorrect {
		t.Fatalf("expected correct at index 0, got %v", classes[0])
	}
	if classes[1] != ClassPending {
		t.Fatalf("expected pending at index 1, got %v", classes[1])
	}
}

func TestClassesIncorrect(t *testing.T) {
	s := newTestSession(t, "ab")
	typeString(s, "ax")
	classes := s.Classes()
	if classes[0] != ClassCorrect || classes[1] != ClassIncorrect {
		t.Fatalf("unexpected classes: %v", classes)
	}
}

func TestClassesNoCursorWhenFinished(t *testing.T) {
	s := newTestSession(t, "ab")
	typeString(s, "ab")
	for i, c := range s.Classes() {
		if c == ClassPending {
			t.Fatalf("finished race still has a cursor at index %d", i)
		}
	}
}
