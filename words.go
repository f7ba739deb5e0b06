package main

import (
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
)

//go:embed resources/words.txt
var wordList string

var loadWords = sync.OnceValue(func() []string {
	lines := strings.Split(wordList, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
})

// randomWord picks a uniform random entry from the embedded word list. The
// registry substitutes its test override before this is ever consulted.
func randomWord() string {
	words := loadWords()
	return words[rand.IntN(len(words))]
}
