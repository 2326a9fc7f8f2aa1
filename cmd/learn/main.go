package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gucio32/morseblink/pkg/generator"
	"github.com/gucio32/morseblink/pkg/learn"
	"github.com/gucio32/morseblink/pkg/morse"
)

func main() {
	tutor := flag.Bool("tutor", false, "Start tutorial mode")
	lessonIdx := flag.Int("lesson", 1, "Lesson index")
	words := flag.Int("words", 3, "Number of words to learn")
	paris := flag.Int("wpm", generator.DefaultPARIS, "Speed in PARIS words per minute")
	flag.Parse()

	lesson, ok := learn.GetLesson(*lessonIdx)
	if !ok {
		fmt.Fprintf(os.Stderr, "lesson %d not found\n", *lessonIdx)
		os.Exit(1)
	}

	tone, err := generator.NewTone(generator.DefaultFrequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tone.Close()

	gen := generator.NewGenerator(tone, generator.Sleep).SetPARIS(*paris)

	if !*tutor {
		if _, err := learn.StartLesson(gen, lesson, *words, uint64(time.Now().UnixNano()), os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// print letters in this lesson and their morse code
	for _, letter := range lesson.Letters {
		code, _ := morse.Translate(letter)
		fmt.Printf("%c: %s\n", letter, code)
	}

	var answer string
	fmt.Print("Type letter to hear it or enter to exit: ")
	for fmt.Scanln(&answer); answer != ""; fmt.Scanln(&answer) {
		answer = strings.ToUpper(answer)
		if utf8.RuneCountInString(answer) != 1 {
			fmt.Println("Only one letter allowed")
		} else if c, _ := utf8.DecodeRuneInString(answer); !lesson.Has(c) {
			fmt.Println("Not in lesson")
		} else {
			gen.Play(answer)
		}

		answer = ""
		fmt.Print("Type letter to hear it or enter to exit: ")
	}
}
