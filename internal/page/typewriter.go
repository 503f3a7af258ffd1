// internal/page/typewriter.go
package page

import (
	"time"

	"go-magnetic-field/internal/config"
)

// Typewriter по кругу «печатает» слова по одной букве.
type Typewriter struct {
	texts []string
	count int // индекс текущего слова
	index int // сколько рун уже показано
}

func NewTypewriter(texts []string) *Typewriter {
	return &Typewriter{texts: texts}
}

// Next показывает на одну руну больше и возвращает текст и паузу до следующего вызова:
// TypingDelayMs во время печати и TypingPauseMs после законченного слова.
func (t *Typewriter) Next() (string, time.Duration) {
	if len(t.texts) == 0 {
		return "", config.TypingPauseMs * time.Millisecond
	}
	if t.count == len(t.texts) {
		t.count = 0
	}
	current := []rune(t.texts[t.count])
	t.index++
	if t.index > len(current) {
		t.index = len(current)
	}
	letter := string(current[:t.index])

	if t.index == len(current) {
		t.count++
		t.index = 0
		return letter, config.TypingPauseMs * time.Millisecond
	}
	return letter, config.TypingDelayMs * time.Millisecond
}

// Ticker вызывает Next по прошедшему времени кадров, для хостов без таймеров.
type Ticker struct {
	writer  *Typewriter
	text    string
	waitFor time.Duration
	elapsed time.Duration
}

func NewTicker(w *Typewriter) *Ticker {
	tk := &Ticker{writer: w}
	tk.text, tk.waitFor = w.Next()
	return tk
}

// Advance сдвигает время на dt и возвращает текущий текст
func (tk *Ticker) Advance(dt time.Duration) string {
	tk.elapsed += dt
	for tk.elapsed >= tk.waitFor {
		tk.elapsed -= tk.waitFor
		tk.text, tk.waitFor = tk.writer.Next()
	}
	return tk.text
}

func (tk *Ticker) Text() string { return tk.text }
