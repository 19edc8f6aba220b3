package mask

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-inputmask/internal/pattern"
)

func mustEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	engine, err := New(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_PhoneMasks(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		input  string
		want   string
	}{
		{"optional prefix typed", Config{Pattern: "[1 ](000) 000-0000"}, "19999999999", "1 (999) 999-9999"},
		{"optional prefix skipped", Config{Pattern: "[1 ](000)-000-0000"}, "7775553333", "(777)-555-3333"},
		{"max length", Config{Pattern: "[1 ](000)-000-0000", MaxLength: 11}, "7775553333124564654654", "(777)-555-3333"},
		{"separator noise", Config{Pattern: "[1 ](000)-000-0000"}, "(777) 555-3333", "(777)-555-3333"},
		{"spaces and hyphen", Config{Pattern: "[1 ](000)-000-0000"}, "777 555-3333", "(777)-555-3333"},
		{"partial three", Config{Pattern: "[1 ](000) 000-0000"}, "777", "(777"},
		{"partial four", Config{Pattern: "[1 ](000) 000-0000"}, "7775", "(777) 5"},
		{"partial six", Config{Pattern: "[1 ](000) 000-0000"}, "777555", "(777) 555"},
		{"partial eight", Config{Pattern: "[1 ](000) 000-0000"}, "77755560", "(777) 555-60"},
		{"empty", Config{Pattern: "[1 ](000) 000-0000"}, "", ""},
		{"empty without optional", Config{Pattern: "(000)-000-0000"}, "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := mustEngine(t, tc.config)
			if got := engine.Mask(tc.input); got != tc.want {
				t.Fatalf("mask %q: want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestEngine_GuideMode(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "[1 ](000) 000-0000", Guide: true})
	cases := map[string]string{
		"777":        "(777) ___-____",
		"7775":       "(777) 5__-____",
		"777555":     "(777) 555-____",
		"77755560":   "(777) 555-60__",
		"777555601":  "(777) 555-601_",
		"7775556010": "(777) 555-6010",
		"":           "(___) ___-____",
	}
	for input, want := range cases {
		if got := engine.Mask(input); got != want {
			t.Fatalf("guide mask %q: want %q, got %q", input, want, got)
		}
	}
}

func TestEngine_CreditCard(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "0000 0000 0000 0000", MaxLength: 16})
	if got, want := engine.Mask("1234123412341234"), "1234 1234 1234 1234"; got != want {
		t.Fatalf("card: want %q, got %q", want, got)
	}
	if got, want := engine.Mask("12341234"), "1234 1234"; got != want {
		t.Fatalf("card partial: want %q, got %q", want, got)
	}
}

func TestEngine_AlphaAndAnySlots(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "aa-*00"})
	if got, want := engine.Mask("AB#12"), "AB-#12"; got != want {
		t.Fatalf("alpha/any: want %q, got %q", want, got)
	}
	// A slot that does not accept the current character renders its
	// pattern character and leaves the input cursor in place.
	digits := mustEngine(t, Config{Pattern: "000"})
	if got, want := digits.Mask("1a2"), "100"; got != want {
		t.Fatalf("mismatched slot: want %q, got %q", want, got)
	}
}

func TestEngine_Resolve(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "[1 ](000) 000-0000"})
	got := engine.Resolve("1-999-999-9999")
	if got != engine {
		t.Fatalf("resolve should return the receiver")
	}
	if engine.Value() != "1 (999) 999-9999" {
		t.Fatalf("value: want %q, got %q", "1 (999) 999-9999", engine.Value())
	}
	if engine.UnmaskedValue() != "19999999999" {
		t.Fatalf("unmasked: want %q, got %q", "19999999999", engine.UnmaskedValue())
	}

	engine.Resolve("")
	if engine.Value() != "" || engine.UnmaskedValue() != "" {
		t.Fatalf("resolve should overwrite state, got %q / %q", engine.Value(), engine.UnmaskedValue())
	}
}

func TestEngine_DefaultDelimiter(t *testing.T) {
	cases := []struct {
		config Config
		want   string
	}{
		{Config{Pattern: TagNumber}, ","},
		{Config{Pattern: TagDate}, "/"},
		{Config{Mode: ModeDate}, "/"},
		{Config{Pattern: "number", Delimiter: "|"}, "|"},
		{Config{Pattern: "0000 0000"}, "-"},
	}
	for _, tc := range cases {
		engine := mustEngine(t, tc.config)
		if got := engine.Config().Delimiter; got != tc.want {
			t.Fatalf("delimiter for %+v: want %q, got %q", tc.config, tc.want, got)
		}
	}
}

func TestEngine_NumberMode(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: TagNumber})
	values := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{0, "0"},
		{1, "1"},
		{15, "15"},
		{150, "150"},
		{1500, "1,500"},
		{15000, "15,000"},
		{15000.1, "15,000.1"},
		{15000.11, "15,000.11"},
		{"15000.0", "15,000.0"},
		{"15000.00", "15,000.00"},
		{"15000000.00", "15,000,000.00"},
	}
	for _, tc := range values {
		if got := engine.MaskValue(tc.in); got != tc.want {
			t.Fatalf("number mask %v: want %q, got %q", tc.in, tc.want, got)
		}
	}

	european := mustEngine(t, Config{Mode: ModeNumber, Delimiter: ".", DecimalChar: ","})
	for in, want := range map[string]string{
		"15000.00":   "15.000,00",
		"150000.00":  "150.000,00",
		"1500000.00": "1.500.000,00",
	} {
		if got := european.Mask(in); got != want {
			t.Fatalf("custom number mask %q: want %q, got %q", in, want, got)
		}
	}

	if got, want := engine.Unmask("$1,500.25"), "1500.25"; got != want {
		t.Fatalf("number unmask: want %q, got %q", want, got)
	}
}

func TestEngine_DateMode(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: TagDate, DatePattern: "mm-dd-yyyy"})
	cases := map[string]string{
		"00000000": "01/01/0001",
		"00330000": "01/31/0001",
		"02292010": "03/01/2010",
		"02312010": "03/03/2010",
		"12252024": "12/25/2024",
		"13":       "12//",
		"1":        "1//",
		"12":       "12//",
		"123":      "12/3/",
		"12252":    "12/25/2",
		"12-25":    "12/25/",
		"":         "",
	}
	for in, want := range cases {
		if got := engine.Mask(in); got != want {
			t.Fatalf("date mask %q: want %q, got %q", in, want, got)
		}
	}
	if got, want := engine.Unmask("12/25/2024"), "12252024"; got != want {
		t.Fatalf("date unmask: want %q, got %q", want, got)
	}
}

func TestEngine_DateOrderings(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		input  string
		want   string
	}{
		{"default year first", Config{Mode: ModeDate}, "20100231", "2010/03/03"},
		{"default partial", Config{Mode: ModeDate}, "2010", "2010//"},
		{"default clamps month", Config{Mode: ModeDate}, "20101540", "2010/12/31"},
		{"month year without day", Config{Mode: ModeDate, DatePattern: "mm-yy"}, "139999", "12/9999"},
		{"month year partial", Config{Mode: ModeDate, DatePattern: "mm-yy"}, "0", "0/"},
		{"month year zeroes", Config{Mode: ModeDate, DatePattern: "mm-yy"}, "000000", "01/0001"},
		{"day month year with dashes", Config{Mode: ModeDate, DatePattern: "dd.mm.yyyy", Delimiter: "-"}, "31042021", "01-05-2021"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := mustEngine(t, tc.config)
			if got := engine.Mask(tc.input); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		mode  Mode
		input string
		want  string
	}{
		{"literal strips separators", ModeLiteral, "(999) 999-9999", "9999999999"},
		{"literal keeps letters", ModeLiteral, "k1a 2b3", "k1a2b3"},
		{"literal strips pipe and slash", ModeLiteral, "a|b/c\\d", "abcd"},
		{"number keeps digits and dot", ModeNumber, "$1,500.25 USD", "1500.25"},
		{"number drops minus", ModeNumber, "-42", "42"},
		{"date strips letters and separators", ModeDate, "12/25/2024 abc", "12252024"},
		{"date strips month names", ModeDate, "Dec 25", "25"},
		{"empty", ModeNumber, "", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tc.input, tc.mode); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEngine_Placeholder(t *testing.T) {
	cases := []struct {
		config Config
		want   string
	}{
		{Config{Pattern: "[1 ](000) 000-0000"}, "(___) ___-____"},
		{Config{Mode: ModeDate, DatePattern: "mm dd yyyy", Delimiter: "-"}, "mm-dd-yyyy"},
		{Config{Mode: ModeDate}, "yyyy/mm/dd"},
		{Config{Mode: ModeNumber}, ""},
	}
	for _, tc := range cases {
		engine := mustEngine(t, tc.config)
		if got := engine.Placeholder(); got != tc.want {
			t.Fatalf("placeholder for %+v: want %q, got %q", tc.config, tc.want, got)
		}
	}
}

func TestNew_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		cause  error
	}{
		{name: "empty pattern", config: Config{}, cause: pattern.ErrEmptyPattern},
		{name: "blank pattern", config: Config{Pattern: "   "}, cause: pattern.ErrEmptyPattern},
		{name: "strict unbalanced", config: Config{Pattern: "[1 (000)", Strict: true}, cause: pattern.ErrUnbalancedGroup},
		{name: "date without components", config: Config{Mode: ModeDate, DatePattern: "--"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tc.config)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %T", err)
			}
			if tc.cause != nil && !errors.Is(err, tc.cause) {
				t.Fatalf("expected cause %v, got %v", tc.cause, err)
			}
		})
	}

	_, err := New(Config{})
	if want := "mask: mask/pattern required and cannot be empty"; err.Error() != want {
		t.Fatalf("message: want %q, got %q", want, err.Error())
	}
}

func TestEngine_UnclosedGroupTolerated(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "000[ ext"})
	if got, want := engine.Mask("12345"), "123"; got != want {
		t.Fatalf("unclosed group: want %q, got %q", want, got)
	}
	if n := len(engine.Segments()); n != 3 {
		t.Fatalf("segments: want 3, got %d", n)
	}
}

func TestEngine_SegmentsAreCopies(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "(000)"})
	segments := engine.Segments()
	segments[0].Literal = "X"
	if got, want := engine.Mask("123"), "(123"; got != want {
		t.Fatalf("mutating copy changed engine: want %q, got %q", want, got)
	}
}

func TestEngine_RoundTrip(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "[1 ](000) 000-0000"})
	inputs := []string{
		"1-999-999-9999",
		"(777) 555 3333",
		"777.555.3333",
		"  777_555/3333 ",
		"7775",
	}
	for _, in := range inputs {
		if got, want := engine.Unmask(engine.Mask(in)), engine.Unmask(in); got != want {
			t.Fatalf("round trip %q: want %q, got %q", in, want, got)
		}
	}
}

func TestEngine_PrefixConsistency(t *testing.T) {
	engine := mustEngine(t, Config{Pattern: "(000) 000-0000"})
	full := engine.Mask("7775553333")
	for i := 1; i <= len("7775553333"); i++ {
		partial := engine.Mask("7775553333"[:i])
		if !strings.HasPrefix(full, partial) {
			t.Fatalf("mask of prefix %d (%q) is not a prefix of %q", i, partial, full)
		}
	}
}

func TestPatternFromValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"0000", "0000"},
		{1234, "1234"},
		{int64(99), "99"},
		{12.5, "12.5"},
	}
	for _, tc := range cases {
		got, err := PatternFromValue(tc.in)
		if err != nil {
			t.Fatalf("pattern from %v: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("pattern from %v: want %q, got %q", tc.in, tc.want, got)
		}
	}

	for _, bad := range []any{nil, true, []string{"0"}, map[string]any{}} {
		if _, err := PatternFromValue(bad); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("pattern from %#v: expected ErrConfiguration, got %v", bad, err)
		}
	}
}
