package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestCanon_Table(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "systems engineering",
			out:  "systems engineering",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'l', 'a', 'b', 0x80, ' ', 'b', '1'}),
			out:  "lab b1",
		},
		{
			name: "case fold",
			in:   "CoMpUtEr ScIeNcE",
			out:  "computer science",
		},
		{
			name: "remove zero-widths",
			in:   "ma​th‍", // ZERO WIDTH SPACE + ZERO WIDTH JOINER
			out:  "math",
		},
		{
			name: "remove combining marks",
			in:   "García", // "García" using combining acute accent
			out:  "garcia",
		},
		{
			name: "width fold fullwidth",
			in:   "ＬＡＢ 101", // fullwidth letters
			out:  "lab 101",
		},
		{
			name: "nfkc ligature",
			in:   "oﬃce hours", // ffi ligature
			out:  "office hours",
		},
		{
			name: "collapse whitespace",
			in:   "room\t\tB\n2   east",
			out:  "room b 2 east",
		},
		{
			name: "trim edges",
			in:   "  \n Chemistry \t ",
			out:  "chemistry",
		},
		{
			name: "controls stripped",
			in:   "phys\x00ics\x1b",
			out:  "physics",
		},
		{
			name: "empty stays empty",
			in:   "",
			out:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Canon(tc.in); got != tc.out {
				t.Fatalf("Canon(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestCanon_AccentedEqualsPlain(t *testing.T) {
	if Canon("José Pérez") != Canon("jose  perez") {
		t.Fatalf("accented and plain forms must canon equal")
	}
}

func TestSanitize_FastPathReturnsSameString(t *testing.T) {
	in := "clean input"
	if out := Sanitize(in); out != in {
		t.Fatalf("Sanitize(%q) = %q", in, out)
	}
}
