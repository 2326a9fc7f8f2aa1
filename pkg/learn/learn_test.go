package learn

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gucio32/morseblink/pkg/generator"
	"github.com/gucio32/morseblink/pkg/morse"
	"golang.org/x/exp/rand"
)

func TestLessonsPlayable(t *testing.T) {
	for idx := 1; idx <= 4; idx++ {
		l, ok := GetLesson(idx)
		if !ok {
			t.Fatalf("lesson %d missing", idx)
		}
		for _, c := range l.Letters {
			if _, ok := morse.Lookup(c); !ok {
				t.Fatalf("lesson %d letter %q has no pattern", idx, c)
			}
		}
	}
	if _, ok := GetLesson(0); ok {
		t.Fatalf("lesson 0 should not exist")
	}
}

func TestWords(t *testing.T) {
	l, _ := GetLesson(1)
	a := l.Words(rand.New(rand.NewSource(7)), 3)
	b := l.Words(rand.New(rand.NewSource(7)), 3)
	if strings.Join(a, " ") != strings.Join(b, " ") {
		t.Fatalf("same seed gave %q and %q", a, b)
	}
	if len(a) != 3 {
		t.Fatalf("got %d words, want 3", len(a))
	}
	for _, w := range a {
		if len(w) != 5 {
			t.Fatalf("word %q length %d, want 5", w, len(w))
		}
		for _, c := range w {
			if !l.Has(c) {
				t.Fatalf("word %q has %q outside the lesson", w, c)
			}
		}
	}
}

func TestScore(t *testing.T) {
	var buf bytes.Buffer
	if got := Score(&buf, "AEL", "AXL"); got != 2 {
		t.Fatalf("Score = %d, want 2", got)
	}
	if got := Score(&buf, "AEL", "A"); got != 1 {
		t.Fatalf("Score short answer = %d, want 1", got)
	}
}

func TestStartLesson(t *testing.T) {
	l, _ := GetLesson(1)
	words := l.Words(rand.New(rand.NewSource(42)), 2)
	answer := strings.ToLower(strings.Join(words, " ")) + "\n"

	tr := &generator.Trace{}
	g := generator.NewGenerator(tr, tr).SetUnit(time.Millisecond)

	var out bytes.Buffer
	correct, err := StartLesson(g, l, 2, 42, strings.NewReader(answer), &out)
	if err != nil {
		t.Fatalf("StartLesson error: %v", err)
	}
	if want := len(answer) - 1; correct != want {
		t.Fatalf("correct = %d, want %d", correct, want)
	}
	if !strings.Contains(out.String(), "Congratulations") {
		t.Fatalf("output missing congratulations: %q", out.String())
	}
	if tr.Pulses() == 0 {
		t.Fatalf("nothing was played")
	}
}
