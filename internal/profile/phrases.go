package profile

import (
	"regexp"
	"sort"
	"strings"
)

// MaxPhraseTags caps the number of bigram tags per grant.
const MaxPhraseTags = 25

var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9']+`)

var stopwords = buildStopwords(`
a an the and or but if then else when while where what how who whom which
to of in on at for from by with without into over under about as is are was were be been being
this that these those it its they them their you your we our i me my
may might can could should shall will would
`)

func buildStopwords(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// Bigrams too generic to be worth surfacing as tags.
var phraseBlocklist = map[string]struct{}{
	"grant application": {},
	"application form":  {},
	"more information":  {},
}

// Tokenize lower-cases and splits text into word tokens.
func Tokenize(text string) []string {
	raw := tokenRe.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		out = append(out, strings.ToLower(w))
	}
	return out
}

// PhraseTags returns the most frequent adjacent-word bigrams of the text,
// stopwords and generic phrases removed. Purely descriptive; scoring never
// reads these.
func PhraseTags(text string, topN int) []string {
	var toks []string
	for _, t := range Tokenize(text) {
		if len(t) < 3 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		toks = append(toks, t)
	}
	if len(toks) < 2 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i+1 < len(toks); i++ {
		bg := toks[i] + " " + toks[i+1]
		if _, blocked := phraseBlocklist[bg]; blocked {
			continue
		}
		if _, seen := counts[bg]; !seen {
			order = append(order, bg)
		}
		counts[bg]++
	}

	// Most frequent first; stable sort keeps first occurrence ahead on ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}
