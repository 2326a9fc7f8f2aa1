package morse

import "testing"

func TestLookupSupported(t *testing.T) {
	chars := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,?"
	for _, c := range chars {
		p, ok := Lookup(c)
		if !ok {
			t.Fatalf("Lookup(%q) undefined", c)
		}
		if len(p) == 0 {
			t.Fatalf("Lookup(%q) returned empty pattern", c)
		}
		for _, s := range p {
			if s != Dot && s != Dash {
				t.Fatalf("Lookup(%q) has symbol %d", c, s)
			}
		}
	}
	if got, want := len(Supported()), len(chars); got != want {
		t.Fatalf("Supported() has %d entries, want %d", got, want)
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, c := range []rune{' ', 'a', 'z', '!', '@', '-', '\n', 0, 255, 256, 'É', -1, '世'} {
		if p, ok := Lookup(c); ok || p != nil {
			t.Fatalf("Lookup(%q) = %v, %v; want undefined", c, p, ok)
		}
		if s, ok := Translate(c); ok || s != "" {
			t.Fatalf("Translate(%q) = %q, %v; want undefined", c, s, ok)
		}
	}
}

func TestPatterns(t *testing.T) {
	for _, c := range []struct {
		in   rune
		want string
	}{
		{'A', ".-"},
		{'E', "."},
		{'I', ".."},
		{'S', "..."},
		{'O', "---"},
		{'Y', "-.--"},
		{'Z', "--.."},
		{'0', "-----"},
		{'5', "....."},
		{'9', "----."},
		{'.', ".-.-.-"},
		{',', "--..--"},
		{'?', "..--.."},
	} {
		p, ok := Lookup(c.in)
		if !ok {
			t.Fatalf("Lookup(%q) undefined", c.in)
		}
		if got := p.String(); got != c.want {
			t.Fatalf("Lookup(%q) = %q, want %q", c.in, got, c.want)
		}
		if got, _ := Translate(c.in); got != c.want {
			t.Fatalf("Translate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLookupIsStable(t *testing.T) {
	a, _ := Lookup('Q')
	b, _ := Lookup('Q')
	if a.String() != b.String() {
		t.Fatalf("Lookup('Q') changed between calls: %q vs %q", a, b)
	}
}
