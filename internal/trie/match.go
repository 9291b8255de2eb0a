package trie

// FindMatches returns every handle whose registered pattern matches topic.
//
// Order: multi-level wildcard matches found at shallower levels first, then
// matches from deeper levels, and the exact match at the deepest level last.
// A handle registered under several matching patterns appears once per
// registration.
func (t *Trie[S]) FindMatches(topic string) []S {
	return t.match(t.tokens.Tokenize(topic), rootID, nil)
}

func (t *Trie[S]) match(path []string, start nodeID, out []S) []S {
	// A single-level wildcard consumed the last segment.
	if len(path) == 0 {
		return append(out, t.nodes[start].subscriptions...)
	}

	single, multi := t.tokens.SingleLevel, t.tokens.MultiLevel
	last := len(path) - 1

	t.walkDown(path, start, func(id nodeID, segment string, index int) {
		// Literal wildcard segments in the query only match literally.
		if segment != multi {
			if wc, ok := t.child(id, multi); ok {
				out = append(out, t.nodes[wc].subscriptions...)
			}
		}
		if segment != single {
			if wc, ok := t.child(id, single); ok {
				out = t.match(path[index+1:], wc, out)
			}
		}
		if index == last {
			if exact, ok := t.child(id, segment); ok {
				out = append(out, t.nodes[exact].subscriptions...)
			}
		}
	})

	return out
}

// Subscriptions returns the handles registered exactly at topic, without
// wildcard expansion.
func (t *Trie[S]) Subscriptions(topic string) []S {
	id, ok := t.resolve(t.tokens.Tokenize(topic))
	if !ok || len(t.nodes[id].subscriptions) == 0 {
		return nil
	}

	return append([]S(nil), t.nodes[id].subscriptions...)
}
