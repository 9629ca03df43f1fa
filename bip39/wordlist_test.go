package bip39

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWordlists(t *testing.T) {
	for _, lang := range Languages {
		if lang == Portuguese {
			continue
		}
		wl, err := WordlistFor(lang)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if wl.Language() != lang {
			t.Errorf("%s list reports language %s", lang, wl.Language())
		}
		for w := Word(0); w < Word(NumWords); w++ {
			word := wl.Word(w)
			if word == "" {
				t.Fatalf("%s: empty word at %d", lang, w)
			}
			got, ok := wl.Index(word)
			if !ok || got != w {
				t.Errorf("%s: %q has index %d (%v), want %d", lang, word, got, ok, w)
			}
		}
		if got := wl.Word(NumWords); got != "" {
			t.Errorf("%s: out of range index returned %q", lang, got)
		}
		if got := wl.Word(-1); got != "" {
			t.Errorf("%s: negative index returned %q", lang, got)
		}
	}
}

func TestEnglishOrder(t *testing.T) {
	wl, err := WordlistFor(English)
	if err != nil {
		t.Fatal(err)
	}
	prefixes := make(map[string]string)
	for w := Word(0); w < Word(NumWords); w++ {
		word := wl.Word(w)
		if w > 0 && wl.Word(w-1) >= word {
			t.Errorf("%q is not sorted after %q", word, wl.Word(w-1))
		}
		p := word
		if utf8.RuneCountInString(p) > abbrevLen {
			p = string([]rune(p)[:abbrevLen])
		}
		if other, dup := prefixes[p]; dup {
			t.Errorf("%q and %q share the prefix %q", other, word, p)
		}
		prefixes[p] = word
	}
	if got := wl.Word(0); got != "abandon" {
		t.Errorf("first word is %q", got)
	}
	if got := wl.Word(NumWords - 1); got != "zoo" {
		t.Errorf("last word is %q", got)
	}
}

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		text string
		lang Language
		want string
	}{
		{"  Abandon\tABOUT\n", English, "abandon about"},
		{"abandon  about", English, "abandon about"},
		{"ａｂｏｕｔ", English, "about"},
		{"", English, ""},
		{"あいこくしん あいこくしん", Japanese, "あいこくしん　あいこくしん"},
	}
	for _, test := range tests {
		got := NormalizePhrase(test.text, test.lang)
		// Japanese words decompose under NFKD.
		if got != normalizeJoined(test.want, test.lang) {
			t.Errorf("NormalizePhrase(%q, %s) = %q, want %q", test.text, test.lang, got, test.want)
		}
	}
}

func normalizeJoined(s string, lang Language) string {
	words := strings.Split(s, lang.Separator())
	for i, w := range words {
		words[i] = normalizeWord(w)
	}
	return strings.Join(words, lang.Separator())
}

func TestComplete(t *testing.T) {
	wl, err := WordlistFor(English)
	if err != nil {
		t.Fatal(err)
	}
	if got := wl.Complete("aban"); !slices.Equal(got, []string{"abandon"}) {
		t.Errorf("Complete(aban) = %v", got)
	}
	got := wl.Complete("AB")
	for _, want := range []string{"abandon", "ability", "able", "about"} {
		if !slices.Contains(got, want) {
			t.Errorf("Complete(AB) = %v, missing %q", got, want)
		}
	}
	for _, w := range got {
		if !strings.HasPrefix(w, "ab") {
			t.Errorf("Complete(AB) returned %q", w)
		}
	}
	if got := wl.Complete("zzz"); len(got) != 0 {
		t.Errorf("Complete(zzz) = %v", got)
	}
	if got := wl.Complete(""); len(got) != 0 {
		t.Errorf("Complete of empty prefix returned %d words", len(got))
	}
}

func TestExpand(t *testing.T) {
	wl, err := WordlistFor(English)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		abbrev string
		want   Word
		ok     bool
	}{
		{"abandon", 0, true},
		{"aban", 0, true},
		{"ABOU", 3, true},
		{"abo", -1, false},
		{"zoo", NumWords - 1, true},
		{"abcd", -1, false},
	}
	for _, test := range tests {
		got, ok := wl.Expand(test.abbrev)
		if got != test.want || ok != test.ok {
			t.Errorf("Expand(%q) = %d, %v, want %d, %v", test.abbrev, got, ok, test.want, test.ok)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		s    string
		want Language
	}{
		{"english", English},
		{"EN", English},
		{"en-US", English},
		{"ja-JP", Japanese},
		{"Japanese", Japanese},
		{"korean", Korean},
		{"es-419", Spanish},
		{"zh-Hant", TraditionalChinese},
		{"zh-TW", TraditionalChinese},
		{"zh-Hans", SimplifiedChinese},
		{"Simplified Chinese", SimplifiedChinese},
		{"chinese_simplified", SimplifiedChinese},
		{"chinese-traditional", TraditionalChinese},
		{"traditional-chinese", TraditionalChinese},
		{"french", French},
		{"it", Italian},
		{"cs", Czech},
		{"pt-BR", Portuguese},
		{"Portuguese", Portuguese},
	}
	for _, test := range tests {
		got, err := ParseLanguage(test.s)
		if err != nil {
			t.Errorf("ParseLanguage(%q): %v", test.s, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", test.s, got, test.want)
		}
	}
	for _, bad := range []string{"", "  ", "klingon", "de"} {
		if l, err := ParseLanguage(bad); err == nil {
			t.Errorf("ParseLanguage(%q) = %s, want error", bad, l)
		}
	}
	for _, l := range Languages {
		got, err := ParseLanguage(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLanguage(%q) = %s, %v", l.String(), got, err)
		}
	}
}

func TestRegister(t *testing.T) {
	if !Available(Portuguese) {
		if _, err := WordlistFor(Portuguese); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Fatalf("Portuguese returned %v, want %v", err, ErrUnsupportedLanguage)
		}
		if Suggest("abc", Portuguese) != nil {
			t.Error("suggestions for a missing list")
		}
		if _, err := Encode(make([]byte, 16), Portuguese); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("encoding without a list returned %v", err)
		}
	}
	if err := Register(English, make([]string, NumWords)); err == nil {
		t.Error("replaced a built-in list")
	}
	// A private registry keeps the process-wide lists untouched.
	var r listRegistry
	if err := r.register(Portuguese, []string{"um", "dois"}); err == nil {
		t.Error("registered a short list")
	}
	words := make([]string, NumWords)
	for i := range words {
		words[i] = fmt.Sprintf("palavra%04d", i)
	}
	dup := slices.Clone(words)
	dup[7] = "PALAVRA0003"
	if err := r.register(Portuguese, dup); err == nil {
		t.Error("registered a list with duplicates")
	}
	if err := r.register(Portuguese, words); err != nil {
		t.Fatal(err)
	}
	if err := r.register(Portuguese, words); err == nil {
		t.Error("registered Portuguese twice")
	}
	wl, err := r.get(Portuguese)
	if err != nil {
		t.Fatal(err)
	}
	m, err := New(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	if got := wl.Word(m[0]); got != "palavra0000" {
		t.Errorf("first word %q", got)
	}
	if got := wl.Word(m[len(m)-1]); got != "palavra0003" {
		t.Errorf("last word %q", got)
	}
	if w, ok := wl.Index("PALAVRA0003"); !ok || w != 3 {
		t.Errorf("Index(PALAVRA0003) = %d, %v", w, ok)
	}
	if got, err := r.get(English); err != nil || got.Word(0) != "abandon" {
		t.Errorf("private registry English list: %v", err)
	}
}
