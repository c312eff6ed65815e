package immargs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func wantOption(t *testing.T, l *lexer, want string) {
	t.Helper()
	name, ok, err := l.nextOption()
	if err != nil {
		t.Fatalf("nextOption() error = %v", err)
	}
	if !ok || name != want {
		t.Fatalf("nextOption() = %q, %v, want %q, true", name, ok, want)
	}
}

func wantValue(t *testing.T, l *lexer, want string) {
	t.Helper()
	value, err := l.nextValue()
	if err != nil {
		t.Fatalf("nextValue() error = %v", err)
	}
	if value != want {
		t.Fatalf("nextValue() = %q, want %q", value, want)
	}
}

func wantDone(t *testing.T, l *lexer) {
	t.Helper()
	name, ok, err := l.nextOption()
	if err != nil {
		t.Fatalf("nextOption() error = %v", err)
	}
	if ok {
		t.Fatalf("nextOption() = %q, want exhausted", name)
	}
}

func wantNonOptions(t *testing.T, l *lexer, want []string) {
	t.Helper()
	rest, err := l.nonOptions()
	if err != nil {
		t.Fatalf("nonOptions() error = %v", err)
	}
	if diff := cmp.Diff(want, rest); diff != "" {
		t.Fatalf("nonOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerShort(t *testing.T) {
	l := newLexer([]string{"-s"})
	wantOption(t, l, "-s")
	wantDone(t, l)
}

func TestLexerShortSpaceValue(t *testing.T) {
	l := newLexer([]string{"-s", "VALUE"})
	wantOption(t, l, "-s")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortAttachedValue(t *testing.T) {
	l := newLexer([]string{"-sVALUE"})
	wantOption(t, l, "-s")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortEqualsValue(t *testing.T) {
	l := newLexer([]string{"-s=VALUE"})
	wantOption(t, l, "-s")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortSpaceEmptyValue(t *testing.T) {
	l := newLexer([]string{"-s", ""})
	wantOption(t, l, "-s")
	wantValue(t, l, "")
	wantDone(t, l)
}

func TestLexerShortEqualsEmptyValue(t *testing.T) {
	l := newLexer([]string{"-s="})
	wantOption(t, l, "-s")
	wantValue(t, l, "")
	wantDone(t, l)
}

func TestLexerShortCombined(t *testing.T) {
	l := newLexer([]string{"-abc"})
	wantOption(t, l, "-a")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantDone(t, l)
}

func TestLexerShortCombinedSpaceValue(t *testing.T) {
	l := newLexer([]string{"-abc", "VALUE"})
	wantOption(t, l, "-a")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortCombinedAttachedValue(t *testing.T) {
	l := newLexer([]string{"-abcVALUE"})
	wantOption(t, l, "-a")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortCombinedEqualsValue(t *testing.T) {
	l := newLexer([]string{"-abc=VALUE"})
	wantOption(t, l, "-a")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerShortCombinedEqualsEmptyValue(t *testing.T) {
	l := newLexer([]string{"-abc="})
	wantOption(t, l, "-a")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantValue(t, l, "")
	wantDone(t, l)
}

func TestLexerLong(t *testing.T) {
	l := newLexer([]string{"--long"})
	wantOption(t, l, "--long")
	wantDone(t, l)
}

func TestLexerLongSpaceValue(t *testing.T) {
	l := newLexer([]string{"--long", "VALUE"})
	wantOption(t, l, "--long")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerLongEqualsValue(t *testing.T) {
	l := newLexer([]string{"--long=VALUE"})
	wantOption(t, l, "--long")
	wantValue(t, l, "VALUE")
	wantDone(t, l)
}

func TestLexerLongEqualsEmptyValue(t *testing.T) {
	l := newLexer([]string{"--long="})
	wantOption(t, l, "--long")
	wantValue(t, l, "")
	wantDone(t, l)
}

func TestLexerNonOptions(t *testing.T) {
	l := newLexer([]string{"abc", "-abc", "--abc"})
	wantDone(t, l)
	wantNonOptions(t, l, []string{"abc", "-abc", "--abc"})
}

func TestLexerNonOptionsDash(t *testing.T) {
	l := newLexer([]string{"-", "abc", "-abc", "--abc"})
	wantDone(t, l)
	wantNonOptions(t, l, []string{"-", "abc", "-abc", "--abc"})
}

func TestLexerNonOptionsAfterDashDash(t *testing.T) {
	l := newLexer([]string{"--", "abc", "-abc", "--abc"})
	wantDone(t, l)
	wantNonOptions(t, l, []string{"abc", "-abc", "--abc"})
}

func TestLexerNonOptionsIncludesDashDash(t *testing.T) {
	l := newLexer([]string{"abc", "--", "-abc", "--abc"})
	wantDone(t, l)
	wantNonOptions(t, l, []string{"abc", "--", "-abc", "--abc"})
}

func TestLexerMixed(t *testing.T) {
	l := newLexer([]string{
		"-f", "-xyz", "-g=5", "-h=", "-i32", "-j", "", "-=", "-=X",
		"--color", "red", "--title=", "--age=47",
		"-", "start", "file.txt", "-s", "-s=VALUE", "--long", "--long=VALUE",
	})

	wantOption(t, l, "-f")
	wantOption(t, l, "-x")
	wantOption(t, l, "-y")
	wantOption(t, l, "-z")
	wantOption(t, l, "-g")
	wantValue(t, l, "5")
	wantOption(t, l, "-h")
	wantValue(t, l, "")
	wantOption(t, l, "-i")
	wantValue(t, l, "32")
	wantOption(t, l, "-j")
	wantValue(t, l, "")
	wantOption(t, l, "-=")
	wantOption(t, l, "-=")
	wantOption(t, l, "-X")
	wantOption(t, l, "--color")
	wantValue(t, l, "red")
	wantOption(t, l, "--title")
	wantValue(t, l, "")
	wantOption(t, l, "--age")
	wantValue(t, l, "47")
	wantDone(t, l)
	wantNonOptions(t, l, []string{
		"-", "start", "file.txt", "-s", "-s=VALUE", "--long", "--long=VALUE",
	})
}

func TestLexerMissingValue(t *testing.T) {
	l := newLexer([]string{"-s"})
	wantOption(t, l, "-s")

	_, err := l.nextValue()
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Type != ErrorTypeMissingValue {
		t.Fatalf("nextValue() error = %v, want missing value", err)
	}
	if perr.Option != "-s" {
		t.Errorf("Option = %q, want %q", perr.Option, "-s")
	}
}

func TestLexerUnexpectedValue(t *testing.T) {
	l := newLexer([]string{"-s=VALUE"})
	wantOption(t, l, "-s")

	_, _, err := l.nextOption()
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Type != ErrorTypeUnexpectedValue {
		t.Fatalf("nextOption() error = %v, want unexpected value", err)
	}
	if perr.Option != "-s" || perr.Value != "VALUE" {
		t.Errorf("Option, Value = %q, %q, want %q, %q", perr.Option, perr.Value, "-s", "VALUE")
	}
}

func TestLexerUnicodeShort(t *testing.T) {
	l := newLexer([]string{"-æbc"})
	wantOption(t, l, "-æ")
	wantOption(t, l, "-b")
	wantOption(t, l, "-c")
	wantDone(t, l)
}
