package extractor

import (
	jmespath "github.com/jmespath-community/go-jmespath"

	"call-analytics-go/internal/types"
)

// Evaluator abstracts JMESPath operations for testability.
type Evaluator interface {
	Evaluate(expr string, data any) (any, error)
}

// libEvaluator implements Evaluator using go-jmespath.
type libEvaluator struct{}

func (libEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// Options configures an Extractor.
type Options struct {
	// Evaluator resolves path expressions; defaults to the jmespath
	// library implementation.
	Evaluator Evaluator
}

// Extractor flattens one analytics document into typed fields. Lookups
// resolve "might not exist" into "value or nil" here; traversal failures
// never escape this package.
type Extractor struct {
	eval Evaluator
}

func New(opts Options) *Extractor {
	ev := opts.Evaluator
	if ev == nil {
		ev = libEvaluator{}
	}
	return &Extractor{eval: ev}
}

// value resolves expr against doc. Absent paths and evaluation failures
// both yield nil.
func (e *Extractor) value(doc types.Document, expr string) any {
	if doc == nil {
		return nil
	}
	v, err := e.eval.Evaluate(expr, map[string]any(doc))
	if err != nil {
		return nil
	}
	return v
}

func (e *Extractor) stringField(doc types.Document, expr string) *string {
	s, ok := e.value(doc, expr).(string)
	if !ok {
		return nil
	}
	return &s
}

// floatField projects expr to a number. Documents come from encoding/json,
// so every number is a float64.
func (e *Extractor) floatField(doc types.Document, expr string) *float64 {
	f, ok := e.value(doc, expr).(float64)
	if !ok {
		return nil
	}
	return &f
}

// secondsField reads a millisecond value at expr and converts it to
// seconds.
func (e *Extractor) secondsField(doc types.Document, expr string) *float64 {
	f, ok := e.value(doc, expr).(float64)
	if !ok {
		return nil
	}
	sec := f / 1000
	return &sec
}

// scoreList reads a sequence of {Score: n} entries in order. One malformed
// entry nils the whole list.
func (e *Extractor) scoreList(doc types.Document, expr string) []float64 {
	items, ok := e.value(doc, expr).([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		score, ok := m["Score"].(float64)
		if !ok {
			return nil
		}
		out = append(out, score)
	}
	return out
}

// stringList reads a sequence of strings; a non-string element nils the
// whole list.
func (e *Extractor) stringList(doc types.Document, expr string) []string {
	items, ok := e.value(doc, expr).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}
