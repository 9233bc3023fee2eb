package state

import "unicode"

// Prompt is the mutable search query. It grows and shrinks at the end only,
// and never contains control characters.
type Prompt struct {
	runes []rune
}

// Append adds printable runes to the end of the prompt. Input containing any
// control rune is rejected wholesale. Reports whether the prompt changed.
func (p *Prompt) Append(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	p.runes = append(p.runes, runes...)
	return true
}

// Backspace removes the last rune. No-op on an empty prompt.
func (p *Prompt) Backspace() bool {
	if len(p.runes) == 0 {
		return false
	}
	p.runes = p.runes[:len(p.runes)-1]
	return true
}

// Reset clears the prompt.
func (p *Prompt) Reset() {
	p.runes = nil
}

// Len returns the prompt length in runes.
func (p *Prompt) Len() int {
	return len(p.runes)
}

func (p *Prompt) String() string {
	return string(p.runes)
}
