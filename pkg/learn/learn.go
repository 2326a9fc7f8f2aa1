package learn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gucio32/morseblink/pkg/generator"
	"golang.org/x/exp/rand"
)

// Lesson represents a particular lesson (lessons map below)
type Lesson struct {
	Letters []rune
}

var lessons = map[int]Lesson{
	1: {[]rune{'A', 'E', 'L', 'V'}},
	2: {[]rune{'A', 'E', 'L', 'V', 'C', 'Q', 'S', 'T'}},
	3: {[]rune{'A', 'E', 'L', 'V', 'C', 'Q', 'S', 'T', 'I', 'M', 'O', 'N'}},
	4: {[]rune{'A', 'E', 'L', 'V', 'C', 'Q', 'S', 'T', 'I', 'M', 'O', 'N', 'R', 'K', 'D', 'U'}},
}

func GetLesson(lessonIdx int) (Lesson, bool) {
	l, ok := lessons[lessonIdx]
	return l, ok
}

func (l Lesson) Has(c rune) bool {
	for _, letter := range l.Letters {
		if letter == c {
			return true
		}
	}
	return false
}

// Words builds nWords random 5-letter words from l.Letters.
func (l Lesson) Words(r *rand.Rand, nWords int) []string {
	words := make([]string, 0, nWords)
	for i := 0; i < nWords; i++ {
		var b strings.Builder
		for j := 0; j < 5; j++ {
			b.WriteRune(l.Letters[r.Intn(len(l.Letters))])
		}
		words = append(words, b.String())
	}
	return words
}

// Score writes text coloured against answer (green correct, red wrong,
// gray missing) and returns the number of matching characters.
func Score(w io.Writer, text, answer string) int {
	correct := 0
	for i, t := range text {
		switch {
		case i >= len(answer):
			fmt.Fprintf(w, "\033[37m%c\033[0m", t)
		case byte(t) != answer[i]:
			fmt.Fprintf(w, "\033[31m%c\033[0m", t)
		default:
			fmt.Fprintf(w, "\033[32m%c\033[0m", t)
			correct++
		}
	}
	fmt.Fprintln(w)
	return correct
}

// StartLesson plays nWords random words on g while the user types what
// they hear, then scores the answer.
func StartLesson(g *generator.Generator, l Lesson, nWords int, seed uint64, in io.Reader, out io.Writer) (int, error) {
	words := l.Words(rand.New(rand.NewSource(seed)), nWords)
	text := strings.Join(words, " ")

	done := make(chan struct{})
	go func() {
		defer close(done)
		g.Play(text)
	}()

	fmt.Fprintf(out, "What do you hear?: ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read answer: %w", err)
	}
	// the line stays with the player until the text is done
	<-done

	answer = strings.ToUpper(strings.TrimSpace(answer))
	correct := Score(out, text, answer)

	fmt.Fprintf(out, "%d/%d correct\n", correct, len(text))
	if correct == len(text) {
		fmt.Fprintln(out, "Congratulations! You can go ahead!")
	}
	return correct, nil
}
