// Package nlquery extracts structured recommendation parameters from a
// free-text shopping query. Extraction is an ordered list of independent
// regex rules; a rule that does not match simply leaves its field unset,
// so parsing never fails.
package nlquery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Params is the best-effort result of parsing a query.
type Params struct {
	// Topic is the residual keyword fragment, empty when nothing remains.
	Topic string
	// PriceRange is [min, max] when a price phrase matched. A zero max
	// means no ceiling was requested (floor-only queries).
	PriceRange []float64
	// Count is the requested number of results, nil when absent.
	Count *int
}

var (
	// rule 1a: imperative verb, optional "me", then a number.
	// e.g. "show me 10", "Find 5"
	countVerbRe = regexp.MustCompile(`(?i)(?:show|find|get|display)\s+(?:me\s+)?(\d+)`)
	// rule 1b: fallback, a number directly before "products"/"items".
	countNounRe = regexp.MustCompile(`(?i)(\d+)\s+(?:products|items)`)

	// rule 2: price ceiling, "under $150" / "under 150".
	priceMaxRe = regexp.MustCompile(`(?i)under\s+\$?(\d+(?:\.\d+)?)`)
	// rule 3: price floor. The grammar is "over $N", syntactically
	// distinct from the ceiling phrase so the two never shadow each other.
	priceMinRe = regexp.MustCompile(`(?i)over\s+\$?(\d+(?:\.\d+)?)`)

	// rule 4: leading interrogative/imperative prefixes, anchored.
	prefixRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^show me`),
		regexp.MustCompile(`(?i)^find me`),
		regexp.MustCompile(`(?i)^get me`),
		regexp.MustCompile(`(?i)^what are`),
		regexp.MustCompile(`(?i)^recommend`),
	}

	// rule 5: marketing qualifiers stripped anywhere, on word boundaries.
	// A product literally named "Top Gear" loses its "Top"; that
	// precision/recall tradeoff is accepted.
	qualifierRe = regexp.MustCompile(`(?i)\b(?:the best|best-rated|affordable|good|great|top)\b`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// Parse applies the extraction rules in order. The first matching count
// pattern wins; price floor and ceiling are independent; the topic is
// whatever survives after the matched substrings, prefixes and
// qualifiers are removed.
func Parse(query string) Params {
	params := Params{}

	// spans of matched count/price substrings, cut from the topic later
	var spans [][]int

	count := countVerbRe.FindStringSubmatchIndex(query)
	if count == nil {
		count = countNounRe.FindStringSubmatchIndex(query)
	}
	if count != nil {
		if n, err := strconv.Atoi(query[count[2]:count[3]]); err == nil {
			params.Count = &n
			spans = append(spans, count[:2])
		}
	}

	var priceMin, priceMax float64
	var hasPrice bool
	if m := priceMaxRe.FindStringSubmatchIndex(query); m != nil {
		priceMax, _ = strconv.ParseFloat(query[m[2]:m[3]], 64)
		hasPrice = true
		spans = append(spans, m[:2])
	}
	if m := priceMinRe.FindStringSubmatchIndex(query); m != nil {
		priceMin, _ = strconv.ParseFloat(query[m[2]:m[3]], 64)
		hasPrice = true
		spans = append(spans, m[:2])
	}
	if hasPrice {
		params.PriceRange = []float64{priceMin, priceMax}
	}

	params.Topic = extractTopic(query, spans)
	return params
}

func extractTopic(query string, spans [][]int) string {
	// cut matched spans back-to-front so earlier indexes stay valid
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] > spans[j][0] })
	topic := query
	for _, s := range spans {
		topic = topic[:s[0]] + " " + topic[s[1]:]
	}

	topic = strings.TrimSpace(topic)
	for _, re := range prefixRes {
		topic = re.ReplaceAllString(topic, "")
		topic = strings.TrimSpace(topic)
	}

	topic = qualifierRe.ReplaceAllString(topic, " ")
	topic = spaceRe.ReplaceAllString(topic, " ")
	return strings.TrimSpace(topic)
}
