package ai

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// ErrUnusableVerdict is returned when a model reply cannot be read as even or odd.
var ErrUnusableVerdict = errors.New("model reply is not a parity verdict")

// verdictWords maps a whole-reply answer to its parity.
var verdictWords = map[string]bool{
	"even":  true,
	"true":  true,
	"yes":   true,
	"odd":   false,
	"false": false,
	"no":    false,
}

var negations = map[string]bool{
	"not":   true,
	"isn't": true,
	"isnt":  true,
	"never": true,
}

// fillers may sit between a negation and the parity word it negates.
var fillers = map[string]bool{
	"a":           true,
	"an":          true,
	"the":         true,
	"really":      true,
	"actually":    true,
	"exactly":     true,
	"necessarily": true,
	"quite":       true,
}

// maxFillers bounds how far back a negation is looked for.
const maxFillers = 3

type rawVerdict struct {
	Even *bool `json:"even"`
}

// ParseVerdict maps a model reply to a parity judgment. Accepted, in order:
// a JSON object with a boolean "even" field (optionally inside a code fence),
// a bare answer word (even/odd, true/false, yes/no), or prose that mentions
// exactly one of even and odd once negations are applied.
func ParseVerdict(raw string) (bool, error) {
	text := stripCodeFences(raw)

	// A reply that opens as JSON is judged as JSON only.
	if strings.HasPrefix(text, "{") {
		var v rawVerdict
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return false, fmt.Errorf("%w: decode %q: %w", ErrUnusableVerdict, truncate(raw, 80), err)
		}
		if v.Even == nil {
			return false, fmt.Errorf("%w: no boolean \"even\" field in %q", ErrUnusableVerdict, truncate(raw, 80))
		}
		return *v.Even, nil
	}

	word := strings.ToLower(strings.Trim(text, " \t\r\n.!?\"'`*"))
	if even, ok := verdictWords[word]; ok {
		return even, nil
	}

	if even, ok := scanProse(text); ok {
		return even, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnusableVerdict, truncate(raw, 80))
}

// scanProse looks for "even"/"odd" tokens only; yes/no and true/false are
// too common in explanations to count.
func scanProse(text string) (even bool, ok bool) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’'
	})
	for i, tok := range tokens {
		tokens[i] = strings.ReplaceAll(strings.Trim(tok, "'’"), "’", "'")
	}

	sawEven, sawOdd := false, false
	for i, tok := range tokens {
		var v bool
		switch tok {
		case "even":
			v = true
		case "odd":
			v = false
		default:
			continue
		}
		if negated(tokens[:i]) {
			v = !v
		}
		if v {
			sawEven = true
		} else {
			sawOdd = true
		}
	}

	switch {
	case sawEven && !sawOdd:
		return true, true
	case sawOdd && !sawEven:
		return false, true
	default:
		return false, false
	}
}

// negated reports whether before ends in a negation, allowing up to
// maxFillers filler words after it ("not an even", "isn't really odd").
func negated(before []string) bool {
	for i, skipped := len(before)-1, 0; i >= 0 && skipped <= maxFillers; i-- {
		switch {
		case negations[before[i]]:
			return true
		case fillers[before[i]]:
			skipped++
		default:
			return false
		}
	}
	return false
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
