// Package morse holds the International Morse code table.
package morse

// Symbol is a single Morse element.
type Symbol uint8

const (
	Dot Symbol = iota
	Dash
)

func (s Symbol) String() string {
	if s == Dash {
		return "-"
	}
	return "."
}

// Pattern is the ordered sequence of symbols for one character.
type Pattern []Symbol

func (p Pattern) String() string {
	b := make([]byte, len(p))
	for i, s := range p {
		b[i] = s.String()[0]
	}
	return string(b)
}

// table is indexed by the ASCII code of an uppercase character.
// Entries are written with '.' for a dot and '-' for a dash.
var table = [256]string{
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'.': ".-.-.-",
	',': "--..--",
	'?': "..--..",
}

var patterns [256]Pattern

func init() {
	for i, s := range table {
		if s == "" {
			continue
		}
		p := make(Pattern, len(s))
		for j := 0; j < len(s); j++ {
			if s[j] == '-' {
				p[j] = Dash
			}
		}
		patterns[i] = p
	}
}

// Lookup returns the pattern for c. Only uppercase letters, digits and
// ". , ?" are defined; lowercase input is not folded.
// The returned pattern is shared and must not be modified.
func Lookup(c rune) (Pattern, bool) {
	if c < 0 || c >= rune(len(patterns)) {
		return nil, false
	}
	p := patterns[c]
	return p, p != nil
}

// Translate returns c in dot/dash notation, e.g. ".-" for 'A'.
func Translate(c rune) (string, bool) {
	if c < 0 || c >= rune(len(table)) {
		return "", false
	}
	s := table[c]
	return s, s != ""
}

// Supported reports every character with a defined pattern, in table order.
func Supported() []rune {
	var out []rune
	for i, s := range table {
		if s != "" {
			out = append(out, rune(i))
		}
	}
	return out
}
