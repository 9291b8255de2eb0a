package bridge

import (
	"fmt"
	"strings"
	"unicode"

	subvault "github.com/kevin-dyer/mqtt-subscription-vault"
)

const (
	subjectSeparator = "."
	subjectWildcard  = "*"
	subjectFullWild  = ">"
)

// subjectMapper translates topic patterns to NATS subjects and back.
type subjectMapper struct {
	prefix    string
	delimiter string
	single    string
	multi     string
}

func newSubjectMapper(cfg *subvault.Config) (subjectMapper, error) {
	m := subjectMapper{
		prefix:    cfg.Bridge.SubjectPrefix,
		delimiter: cfg.Delimiter,
		single:    cfg.SingleLevelWildcard,
		multi:     cfg.MultiLevelWildcard,
	}

	if m.prefix != "" {
		for _, token := range strings.Split(m.prefix, subjectSeparator) {
			if !validToken(token) {
				return subjectMapper{}, fmt.Errorf("%w: subject prefix %q", subvault.ErrInvalidConfig, m.prefix)
			}
		}
	}

	return m, nil
}

// subject maps topic to a NATS subject. Wildcard segments are translated only
// when wildcards is true; a publish subject must be literal.
func (m subjectMapper) subject(topic string, wildcards bool) (string, error) {
	segments := strings.Split(topic, m.delimiter)
	tokens := make([]string, 0, len(segments)+1)
	if m.prefix != "" {
		tokens = append(tokens, m.prefix)
	}

	for i, segment := range segments {
		switch {
		case wildcards && segment == m.single:
			tokens = append(tokens, subjectWildcard)
		case wildcards && segment == m.multi:
			// NATS only accepts ">" as the final token.
			if i != len(segments)-1 {
				return "", fmt.Errorf("%w: %q: multi-level wildcard must be the last segment", subvault.ErrInvalidSubject, topic)
			}
			tokens = append(tokens, subjectFullWild)
		case !wildcards && (segment == m.single || segment == m.multi):
			return "", fmt.Errorf("%w: %q: wildcards are not allowed in a publish topic", subvault.ErrInvalidSubject, topic)
		case !validToken(segment):
			return "", fmt.Errorf("%w: %q: segment %d (%q) is not a valid subject token", subvault.ErrInvalidSubject, topic, i, segment)
		default:
			tokens = append(tokens, segment)
		}
	}

	return strings.Join(tokens, subjectSeparator), nil
}

// topic maps a literal subject received from NATS back to a topic.
func (m subjectMapper) topic(subject string) string {
	if m.prefix != "" {
		subject = strings.TrimPrefix(subject, m.prefix+subjectSeparator)
	}

	return strings.ReplaceAll(subject, subjectSeparator, m.delimiter)
}

func validToken(token string) bool {
	if token == "" {
		return false
	}

	return !strings.ContainsAny(token, subjectSeparator+subjectWildcard+subjectFullWild) &&
		!strings.ContainsFunc(token, unicode.IsSpace)
}
