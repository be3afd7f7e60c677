package extractor

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-analytics-go/internal/types"
)

func docFromJSON(t *testing.T, raw string) types.Document {
	t.Helper()
	var doc types.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

// evalStub lets tests force evaluator outcomes.
type evalStub struct {
	result any
	err    error
}

func (s evalStub) Evaluate(string, any) (any, error) {
	return s.result, s.err
}

func TestStringField(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{"a": {"b": "POSITIVE", "n": 3}}`)

	got := e.stringField(doc, "a.b")
	require.NotNil(t, got)
	assert.Equal(t, "POSITIVE", *got)

	assert.Nil(t, e.stringField(doc, "a.missing"))
	assert.Nil(t, e.stringField(doc, "a.n"), "numbers are not strings")
	assert.Nil(t, e.stringField(nil, "a.b"))
}

func TestFloatField(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{"speed": {"wpm": 141.5}, "label": "x"}`)

	got := e.floatField(doc, "speed.wpm")
	require.NotNil(t, got)
	assert.Equal(t, 141.5, *got)

	assert.Nil(t, e.floatField(doc, "speed.other"))
	assert.Nil(t, e.floatField(doc, "label"))
}

func TestSecondsFieldDividesMillisBy1000(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{"NonTalkTime": {"TotalTimeMillis": 4500}, "bad": "4500"}`)

	got := e.secondsField(doc, "NonTalkTime.TotalTimeMillis")
	require.NotNil(t, got)
	assert.Equal(t, 4.5, *got)

	assert.Nil(t, e.secondsField(doc, "bad"), "string millis do not convert")
	assert.Nil(t, e.secondsField(doc, "NonTalkTime.Missing"))
}

func TestScoreList(t *testing.T) {
	e := New(Options{})

	doc := docFromJSON(t, `{"q": [{"Score": 1.2}, {"Score": 0.5}, {"Score": 4}]}`)
	assert.Equal(t, []float64{1.2, 0.5, 4}, e.scoreList(doc, "q"))

	empty := docFromJSON(t, `{"q": []}`)
	assert.Empty(t, e.scoreList(empty, "q"))
	assert.NotNil(t, e.scoreList(empty, "q"), "an empty period list is still a value")

	missingScore := docFromJSON(t, `{"q": [{"Score": 1.2}, {"BeginOffsetMillis": 0}]}`)
	assert.Nil(t, e.scoreList(missingScore, "q"), "one entry without Score nils the list")

	nonMap := docFromJSON(t, `{"q": [1, 2]}`)
	assert.Nil(t, e.scoreList(nonMap, "q"))

	assert.Nil(t, e.scoreList(doc, "absent"))
}

func TestStringList(t *testing.T) {
	e := New(Options{})

	doc := docFromJSON(t, `{"Categories": {"MatchedCategories": ["refund", "escalation"]}}`)
	assert.Equal(t, []string{"refund", "escalation"}, e.stringList(doc, "Categories.MatchedCategories"))

	mixed := docFromJSON(t, `{"Categories": {"MatchedCategories": ["refund", 7]}}`)
	assert.Nil(t, e.stringList(mixed, "Categories.MatchedCategories"))

	assert.Nil(t, e.stringList(doc, "Categories.Missing"))
}

func TestEvaluatorFailureYieldsNil(t *testing.T) {
	e := New(Options{Evaluator: evalStub{err: errors.New("boom")}})
	doc := types.Document{"a": "b"}

	assert.Nil(t, e.stringField(doc, "a"))
	assert.Nil(t, e.floatField(doc, "a"))
	assert.Nil(t, e.secondsField(doc, "a"))
	assert.Nil(t, e.scoreList(doc, "a"))
	assert.Nil(t, e.stringList(doc, "a"))
}

func TestNewDefaultsEvaluator(t *testing.T) {
	e := New(Options{})
	require.NotNil(t, e.eval)

	stub := evalStub{result: "v"}
	e = New(Options{Evaluator: stub})
	got := e.stringField(types.Document{}, "anything")
	require.NotNil(t, got)
	assert.Equal(t, "v", *got)
}
