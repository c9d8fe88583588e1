package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// ResponseMap holds a respondent's answers keyed by question id. Values are
// either float64 (scoreable answers, slider values) or string (yes/no gates,
// free-text answers). Keys exist only for questions that have been answered.
type ResponseMap map[string]interface{}

// UnmarshalJSON decodes with UseNumber so numeric answers survive a
// serialization round trip as numbers and never arrive as strings.
func (r *ResponseMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*r = nil
		return nil
	}

	out := make(ResponseMap, len(raw))
	for id, v := range raw {
		if n, ok := v.(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return err
			}
			out[id] = f
			continue
		}
		out[id] = v
	}
	*r = out
	return nil
}

// Number returns the answer for questionID as a float64. The second return is
// false for missing or non-numeric answers.
func (r ResponseMap) Number(questionID string) (float64, bool) {
	v, ok := r[questionID]
	if !ok {
		return 0, false
	}
	f, ok := toFloat(v)
	return f, ok
}

// String returns the answer for questionID as a string, false when the answer
// is missing or not string-typed.
func (r ResponseMap) String(questionID string) (string, bool) {
	v, ok := r[questionID]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a shallow copy; answer values are immutable scalars.
func (r ResponseMap) Clone() ResponseMap {
	out := make(ResponseMap, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AnswersEqual implements the strict, type-sensitive equality used by
// conditional logic: numbers only ever equal numbers, strings only strings.
func AnswersEqual(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
