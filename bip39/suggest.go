package bip39

const (
	suggestDistance = 2
	suggestLimit    = 3
)

// Suggest returns up to three words of lang within edit distance two of
// word, in list order. It returns nil if lang has no word list.
func Suggest(word string, lang Language) []string {
	wl, err := WordlistFor(lang)
	if err != nil {
		return nil
	}
	return wl.Suggest(word)
}

// Suggest is Closest with the default distance and limit.
func (wl *Wordlist) Suggest(word string) []string {
	return wl.Closest(word, suggestDistance, suggestLimit)
}

// Closest returns up to limit words whose edit distance to word is at
// most maxDistance, in list order. Distances are measured between the
// normalized forms.
func (wl *Wordlist) Closest(word string, maxDistance, limit int) []string {
	if limit <= 0 || maxDistance < 0 {
		return nil
	}
	key := []rune(normalizeWord(word))
	var matches []string
	for i, cand := range wl.runes {
		if _, ok := boundedDistance(key, cand, maxDistance); !ok {
			continue
		}
		matches = append(matches, wl.words[i])
		if len(matches) == limit {
			break
		}
	}
	return matches
}

// EditDistance returns the Levenshtein distance between a and b
// counted in Unicode code points.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	d, _ := boundedDistance(ra, rb, max(len(ra), len(rb)))
	return d
}

// boundedDistance computes the Levenshtein distance between a and b
// with a single row. It gives up and reports false as soon as the
// distance is known to exceed limit.
func boundedDistance(a, b []rune, limit int) (int, bool) {
	if abs(len(a)-len(b)) > limit {
		return 0, false
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		rowMin := row[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			next := min(row[j]+1, row[j-1]+1, diag+cost)
			diag = row[j]
			row[j] = next
			rowMin = min(rowMin, next)
		}
		if rowMin > limit {
			return 0, false
		}
	}
	d := row[len(b)]
	return d, d <= limit
}
