package quote

import (
	"context"
	"math/rand"
	"time"
)

var builtinPassages = []string{
	"The quick brown fox jumps over the lazy dog near the riverbank.",
	"To be or not to be, that is the question that haunts us all.",
	"In the middle of difficulty lies opportunity, waiting to be seized.",
	"The only way to do great work is to love what you do every day.",
	"Life is what happens when you are busy making other plans for tomorrow.",
	"Not all those who wander are lost in the wilderness of the world.",
	"The journey of a thousand miles begins with a single step forward.",
	"It does not do to dwell on dreams and forget to live your life.",
	"The best time to plant a tree was twenty years ago. The second best time is now.",
	"Stay hungry, stay foolish, and never stop learning new things each day.",
	"Code is like humor. When you have to explain it, it is bad code.",
	"First, solve the problem. Then, write the code to make it work.",
	"Simplicity is the soul of efficiency in both design and engineering.",
	"Any fool can write code that a computer can understand. Good programmers write code that humans can understand.",
	"Programming is the art of telling another human what one wants the computer to do.",
	"Talk is cheap. Show me the code and let the results speak for themselves.",
	"The most dangerous phrase in the language is: we have always done it this way.",
	"Perfection is achieved not when there is nothing more to add, but when there is nothing left to take away.",
	"The function of good software is to make the complex appear to be simple.",
	"Debugging is twice as hard as writing the code in the first place.",
}

// Builtin serves passages from an embedded list. It never fails, which
// makes it the terminal tier of the fallback chain.
type Builtin struct {
	rnd *rand.Rand
}

// NewBuiltin returns a Builtin provider seeded with the current time.
func NewBuiltin() *Builtin {
	return &Builtin{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Fetch implements Provider.
func (b *Builtin) Fetch(_ context.Context) (Passage, error) {
	content := builtinPassages[b.rnd.Intn(len(builtinPassages))]
	return Passage{Content: content, Author: UnknownAuthor}, nil
}
