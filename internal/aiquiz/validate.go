package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/saulo-duarte/enade-questoes/internal/llm"
)

var ErrInvalidQuestion = errors.New("generated question does not match the expected JSON shape")

var (
	requiredKeys = []string{"contextualização", "enunciado", "alternativas", "gabarito", "justificativas"}
	letters      = []string{"A", "B", "C", "D", "E"}

	// Models often drop the accents from the keys.
	keyAliases = map[string]string{
		"contextualizacao": "contextualização",
	}

	gabaritoPattern = regexp.MustCompile(`(?i)^(?:gabarito\s*:?\s*)?(?:letra\s+)?\(?([a-e])\)?[\s.)]*$`)
)

// ValidationError lists every shape problem found in one pass. Raw keeps the
// model's answer so callers can still show it.
type ValidationError struct {
	Missing  []string `json:"missing,omitempty"`
	Problems []string `json:"problems,omitempty"`
	Raw      string   `json:"raw,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Problems) > 0 {
		parts = append(parts, strings.Join(e.Problems, "; "))
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidQuestion.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuestion
}

func ParseStructured(raw string) (*StructuredQuestion, error) {
	clean := llm.StripCodeFences(raw)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return nil, &ValidationError{Problems: []string{"invalid JSON: " + err.Error()}}
	}

	fields := make(map[string]json.RawMessage, len(obj))
	for k, v := range obj {
		key := strings.ToLower(strings.TrimSpace(k))
		if alias, ok := keyAliases[key]; ok {
			key = alias
		}
		fields[key] = v
	}

	verr := &ValidationError{}
	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			verr.Missing = append(verr.Missing, k)
		}
	}

	q := &StructuredQuestion{}
	q.Contextualizacao = decodeString(fields, "contextualização", verr)
	q.Enunciado = decodeString(fields, "enunciado", verr)
	q.Alternativas = decodeLettered(fields, "alternativas", verr)
	q.Justificativas = decodeLettered(fields, "justificativas", verr)

	if raw, ok := fields["gabarito"]; ok {
		var g string
		if err := json.Unmarshal(raw, &g); err != nil {
			verr.Problems = append(verr.Problems, "gabarito must be a string")
		} else if letter, ok := NormalizeGabarito(g); ok {
			q.Gabarito = letter
		} else {
			verr.Problems = append(verr.Problems, fmt.Sprintf("gabarito %q is not a letter from A to E", g))
		}
	}

	if len(verr.Missing) > 0 || len(verr.Problems) > 0 {
		return nil, verr
	}
	return q, nil
}

// NormalizeGabarito accepts "C", "c)", "Letra C" or "Gabarito: Letra C".
func NormalizeGabarito(v string) (string, bool) {
	m := gabaritoPattern.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

func decodeString(fields map[string]json.RawMessage, key string, verr *ValidationError) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Problems = append(verr.Problems, key+" must be a string")
		return ""
	}
	if strings.TrimSpace(s) == "" {
		verr.Problems = append(verr.Problems, key+" is empty")
	}
	return s
}

func decodeLettered(fields map[string]json.RawMessage, key string, verr *ValidationError) map[string]string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		verr.Problems = append(verr.Problems, key+" must be an object of strings keyed by letter")
		return nil
	}

	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToUpper(strings.Trim(strings.TrimSpace(k), ")."))] = v
	}

	var extra []string
	for k := range out {
		if !isLetter(k) {
			extra = append(extra, k)
		}
	}
	for _, l := range letters {
		if strings.TrimSpace(out[l]) == "" {
			verr.Missing = append(verr.Missing, key+"."+l)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		verr.Problems = append(verr.Problems, fmt.Sprintf("%s has unexpected keys: %s", key, strings.Join(extra, ", ")))
	}
	return out
}

func isLetter(k string) bool {
	for _, l := range letters {
		if k == l {
			return true
		}
	}
	return false
}
