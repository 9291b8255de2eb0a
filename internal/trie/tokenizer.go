package trie

import "strings"

// Tokens configures topic splitting and the wildcard segment tokens.
type Tokens struct {
	// Delimiter separates topic segments.
	Delimiter string

	// SingleLevel is the segment matching exactly one topic segment.
	SingleLevel string

	// MultiLevel is the segment matching the remainder of a topic.
	MultiLevel string
}

// DefaultTokens returns MQTT-style tokens: "/", "+" and "#".
func DefaultTokens() Tokens {
	return Tokens{
		Delimiter:   "/",
		SingleLevel: "+",
		MultiLevel:  "#",
	}
}

// Tokenize splits topic into its segments.
//
// No segment is filtered out: "a//b", "/a" and "a/" all produce empty-string
// segments, and "" produces a single empty segment. Wildcard placement is not
// validated.
func (k Tokens) Tokenize(topic string) []string {
	return strings.Split(topic, k.Delimiter)
}

// Join is the inverse of Tokenize.
func (k Tokens) Join(segments []string) string {
	return strings.Join(segments, k.Delimiter)
}

func (k Tokens) withDefaults() Tokens {
	def := DefaultTokens()
	if k.Delimiter == "" {
		k.Delimiter = def.Delimiter
	}
	if k.SingleLevel == "" {
		k.SingleLevel = def.SingleLevel
	}
	if k.MultiLevel == "" {
		k.MultiLevel = def.MultiLevel
	}

	return k
}
