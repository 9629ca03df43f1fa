package bip39

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Word is an index into a word list.
type Word int

// NumWords is the number of words in every BIP39 word list.
const NumWords = 2048

const wordBits = 11

// abbrevLen is the number of leading code points that identify a word
// uniquely in the standard lists.
const abbrevLen = 4

func (w Word) valid() bool {
	return w >= 0 && w < NumWords
}

// Wordlist is an immutable 2048-entry word list with lookup tables
// keyed by the normalized form of every word.
type Wordlist struct {
	lang  Language
	words []string
	keys  []string
	runes [][]rune
	index map[string]Word
	// sorted holds the word indices ordered by normalized key.
	sorted []Word
}

func newWordlist(lang Language, words []string) (*Wordlist, error) {
	if len(words) != NumWords {
		return nil, fmt.Errorf("bip39: %s word list has %d words, want %d", lang, len(words), NumWords)
	}
	wl := &Wordlist{
		lang:   lang,
		words:  make([]string, NumWords),
		keys:   make([]string, NumWords),
		runes:  make([][]rune, NumWords),
		index:  make(map[string]Word, NumWords),
		sorted: make([]Word, NumWords),
	}
	copy(wl.words, words)
	for i, w := range wl.words {
		k := normalizeWord(w)
		if k == "" {
			return nil, fmt.Errorf("bip39: %s word list: empty word at index %d", lang, i)
		}
		if j, dup := wl.index[k]; dup {
			return nil, fmt.Errorf("bip39: %s word list: %q at index %d duplicates index %d", lang, w, i, j)
		}
		wl.keys[i] = k
		wl.runes[i] = []rune(k)
		wl.index[k] = Word(i)
		wl.sorted[i] = Word(i)
	}
	sort.Slice(wl.sorted, func(i, j int) bool {
		return wl.keys[wl.sorted[i]] < wl.keys[wl.sorted[j]]
	})
	return wl, nil
}

// Language returns the language of the list.
func (wl *Wordlist) Language() Language {
	return wl.lang
}

// Word returns the word at index w, or the empty string if w is out
// of range.
func (wl *Wordlist) Word(w Word) string {
	if !w.valid() {
		return ""
	}
	return wl.words[w]
}

// Index returns the index of word. The lookup ignores case and
// compatibility variants such as full-width letters.
func (wl *Wordlist) Index(word string) (Word, bool) {
	w, ok := wl.index[normalizeWord(word)]
	return w, ok
}

// Complete returns the words beginning with prefix, in normalized
// lexicographic order.
func (wl *Wordlist) Complete(prefix string) []string {
	p := normalizeWord(prefix)
	if p == "" {
		return nil
	}
	i := sort.Search(len(wl.sorted), func(i int) bool {
		return wl.keys[wl.sorted[i]] >= p
	})
	var matches []string
	for ; i < len(wl.sorted); i++ {
		w := wl.sorted[i]
		if !strings.HasPrefix(wl.keys[w], p) {
			break
		}
		matches = append(matches, wl.words[w])
	}
	return matches
}

// Expand resolves a word or an abbreviation of it. Abbreviations must
// be at least four code points long and match exactly one word.
func (wl *Wordlist) Expand(abbrev string) (Word, bool) {
	if w, ok := wl.Index(abbrev); ok {
		return w, true
	}
	p := normalizeWord(abbrev)
	if utf8.RuneCountInString(p) < abbrevLen {
		return -1, false
	}
	matches := wl.Complete(p)
	if len(matches) != 1 {
		return -1, false
	}
	return wl.Index(matches[0])
}

// NormalizePhrase splits text on runs of Unicode white space,
// normalizes every word and joins them with the separator of lang.
func NormalizePhrase(text string, lang Language) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = normalizeWord(f)
	}
	return strings.Join(fields, lang.Separator())
}

// normalizeWord returns the NFKD form of w in lower case. Lowering
// covers every script, not only ASCII; the official lists are already
// lower case, so the wider folding only affects user input such as
// accented capitals. Casers are not safe for concurrent use, so one is
// created per call.
func normalizeWord(w string) string {
	return cases.Lower(language.Und).String(norm.NFKD.String(strings.TrimSpace(w)))
}

// listRegistry holds the lazily built word lists.
type listRegistry struct {
	mu    sync.RWMutex
	lists [len(languageInfo)]*Wordlist
}

var registry listRegistry

// WordlistFor returns the word list of lang, building it on first use.
func WordlistFor(lang Language) (*Wordlist, error) {
	return registry.get(lang)
}

// Register installs the word list for a language that has no built-in
// list. It fails if a list is already available for lang.
func Register(lang Language, words []string) error {
	return registry.register(lang, words)
}

func (r *listRegistry) get(lang Language) (*Wordlist, error) {
	if !lang.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedLanguage, lang)
	}
	r.mu.RLock()
	wl := r.lists[lang]
	r.mu.RUnlock()
	if wl != nil {
		return wl, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if wl := r.lists[lang]; wl != nil {
		return wl, nil
	}
	words := builtinWords(lang)
	if words == nil {
		return nil, fmt.Errorf("%w: %s word list not installed", ErrUnsupportedLanguage, lang)
	}
	wl, err := newWordlist(lang, words)
	if err != nil {
		return nil, err
	}
	r.lists[lang] = wl
	return wl, nil
}

func (r *listRegistry) register(lang Language, words []string) error {
	if !lang.valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedLanguage, lang)
	}
	if builtinWords(lang) != nil {
		return fmt.Errorf("bip39: %s word list is built in", lang)
	}
	wl, err := newWordlist(lang, words)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lists[lang] != nil {
		return fmt.Errorf("bip39: %s word list already registered", lang)
	}
	r.lists[lang] = wl
	return nil
}

// Available reports whether a word list is installed for lang.
func Available(lang Language) bool {
	_, err := WordlistFor(lang)
	return err == nil
}

// builtinWords returns the official lists shipped by go-bip39. There
// is no Portuguese list among them.
func builtinWords(lang Language) []string {
	switch lang {
	case English:
		return wordlists.English
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	case SimplifiedChinese:
		return wordlists.ChineseSimplified
	case TraditionalChinese:
		return wordlists.ChineseTraditional
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Czech:
		return wordlists.Czech
	}
	return nil
}
