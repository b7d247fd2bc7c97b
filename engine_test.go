package flashkw

import (
	"reflect"
	"testing"
)

func TestScenarioBasicExtraction(t *testing.T) {
	e := New(false)
	e.Insert("Taj Mahal", "India")
	e.Insert("Delhi", "capital")

	matches := e.Extract("I love Taj Mahal and Delhi", true, 0)
	var got []string
	for _, m := range matches {
		got = append(got, m.Payload)
	}
	want := []string{"India", "capital"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() payloads = %v; want %v", got, want)
	}

	if matches[0].Start != 7 || matches[0].End != 16 {
		t.Errorf("matches[0] span = (%d,%d); want (7,16)", matches[0].Start, matches[0].End)
	}
	if matches[1].Start != 21 || matches[1].End != 26 {
		t.Errorf("matches[1] span = (%d,%d); want (21,26)", matches[1].Start, matches[1].End)
	}
}

func TestScenarioCaseInsensitiveByDefault(t *testing.T) {
	e := New(false)
	e.Insert("Python", "py")

	matches := e.Extract("pyTHON is great", true, 0)
	if len(matches) != 1 || matches[0].Payload != "py" {
		t.Fatalf("Extract() = %#v; want a single py match", matches)
	}
}

func TestScenarioLongestMatchWins(t *testing.T) {
	e := New(false)
	e.Insert("New", "")
	e.Insert("New York", "")

	matches := e.Extract("I am in New York", true, 0)
	if len(matches) != 1 || matches[0].Payload != "New York" {
		t.Fatalf("Extract() = %#v; want a single New York match", matches)
	}
}

func TestScenarioWordBoundaryRejectsPrefix(t *testing.T) {
	e := New(false)
	e.Insert("cat", "")

	matches := e.Extract("category", true, 0)
	if len(matches) != 0 {
		t.Fatalf("Extract() = %#v; want no matches inside category", matches)
	}
}

func TestScenarioFuzzyMatch(t *testing.T) {
	e := New(false)
	e.Insert("Skype", "skype")

	matches := e.Extract("I use Skpe", true, 1)
	if len(matches) != 1 || matches[0].Payload != "skype" {
		t.Fatalf("Extract() = %#v; want a single skype match", matches)
	}
	if matches[0].End != 10 {
		t.Errorf("matches[0].End = %d; want 10 (just past \"Skpe\")", matches[0].End)
	}
}

func TestScenarioRemoveAndPrune(t *testing.T) {
	e := New(false)
	e.Insert("Apple", "")
	e.Insert("App", "")
	e.Remove("Apple")

	if !e.Contains("App") {
		t.Error("Contains(App) = false; want true")
	}
	if e.Contains("Apple") {
		t.Error("Contains(Apple) = true; want false")
	}
}

func TestScenarioMultiPayload(t *testing.T) {
	e := New(false)
	e.InsertManyClean([]string{"javascript", "node"}, "js")

	matches := e.Extract("I love javascript and node", true, 0)
	var got []string
	for _, m := range matches {
		got = append(got, m.Payload)
	}
	want := []string{"js", "js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() payloads = %v; want %v", got, want)
	}
}

func TestScenarioSentenceSplit(t *testing.T) {
	e := New(false)
	e.Insert("Python", "")
	e.Insert("Java", "")

	sentences := e.ExtractSentences("I love Python. Java is good.")
	if len(sentences) != 2 {
		t.Fatalf("ExtractSentences() returned %d sentences; want 2", len(sentences))
	}
	if sentences[0].Sentence != "I love Python." {
		t.Errorf("sentences[0].Sentence = %q", sentences[0].Sentence)
	}
	if sentences[1].Sentence != " Java is good." {
		t.Errorf("sentences[1].Sentence = %q", sentences[1].Sentence)
	}
}

func TestReplaceIdentityWhenNoMatch(t *testing.T) {
	e := New(false)
	e.Insert("keyword", "kw")

	text := "nothing relevant here"
	got, records := e.Replace(text, true, 0)
	if got != text || records != nil {
		t.Fatalf("Replace() = (%q, %v); want identity with no records", got, records)
	}
}

func TestIndexingOperators(t *testing.T) {
	e := New(false)
	e.Assign("Delhi", "capital")

	if !e.ContainsKey("Delhi") {
		t.Error("ContainsKey(Delhi) = false; want true")
	}
	val, err := e.Get("Delhi")
	if err != nil || val != "capital" {
		t.Fatalf("Get(Delhi) = (%q, %v); want (capital, nil)", val, err)
	}

	if _, err := e.Get("missing"); err == nil {
		t.Fatal("Get(missing) error = nil; want KeyError")
	}
	if err := e.Delete("missing"); err == nil {
		t.Fatal("Delete(missing) error = nil; want KeyError")
	}
	if err := e.Delete("Delhi"); err != nil {
		t.Fatalf("Delete(Delhi) error = %v; want nil", err)
	}
	if e.ContainsKey("Delhi") {
		t.Error("ContainsKey(Delhi) = true after Delete; want false")
	}
}

func TestIterateNotImplemented(t *testing.T) {
	e := New(false)
	if err := e.Iterate(); err != ErrNotImplemented {
		t.Fatalf("Iterate() = %v; want ErrNotImplemented", err)
	}
}

func TestInsertDictGroupedShape(t *testing.T) {
	e := New(false)
	created, err := e.InsertDict(map[string]any{
		"js": []any{"javascript", "node"},
	})
	if err != nil {
		t.Fatalf("InsertDict() error = %v", err)
	}
	if created != 2 {
		t.Fatalf("InsertDict() created = %d; want 2", created)
	}

	matches := e.Extract("I write javascript", true, 0)
	if len(matches) != 1 || matches[0].Payload != "js" {
		t.Fatalf("Extract() = %#v; want a single js match", matches)
	}
}

func TestInsertDictRejectsBadValue(t *testing.T) {
	e := New(false)
	_, err := e.InsertDict(map[string]any{"bad": 42})
	if err == nil {
		t.Fatal("InsertDict() error = nil; want a TypeError")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("InsertDict() error = %v (%T); want *TypeError", err, err)
	}
}

func TestRemoveManyDictGroupedShape(t *testing.T) {
	e := New(false)
	e.InsertDict(map[string]any{
		"js": []any{"javascript", "node"},
	})
	e.Insert("python", "python")

	removed, err := e.RemoveManyDict(map[string]any{
		"js": []any{"javascript", "node"},
	})
	if err != nil {
		t.Fatalf("RemoveManyDict() error = %v", err)
	}
	if removed != 2 {
		t.Fatalf("RemoveManyDict() removed = %d; want 2", removed)
	}
	if e.Contains("javascript") || e.Contains("node") {
		t.Fatal("RemoveManyDict() left a removed keyword registered")
	}
	if !e.Contains("python") {
		t.Fatal("RemoveManyDict() removed a keyword it was not given")
	}
}

func TestRemoveManyDictFlatShape(t *testing.T) {
	e := New(false)
	e.Insert("javascript", "js")

	removed, err := e.RemoveManyDict(map[string]any{"javascript": "js"})
	if err != nil {
		t.Fatalf("RemoveManyDict() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("RemoveManyDict() removed = %d; want 1", removed)
	}
	if e.Contains("javascript") {
		t.Fatal("RemoveManyDict() left javascript registered")
	}
}

func TestRemoveManyDictRejectsBadValue(t *testing.T) {
	e := New(false)
	_, err := e.RemoveManyDict(map[string]any{"bad": 42})
	if err == nil {
		t.Fatal("RemoveManyDict() error = nil; want a TypeError")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("RemoveManyDict() error = %v (%T); want *TypeError", err, err)
	}
}

func TestSetBoundaryRejectsWrongType(t *testing.T) {
	e := New(false)
	if err := e.SetBoundary(42); err == nil {
		t.Fatal("SetBoundary(42) error = nil; want a TypeError")
	}
}

func TestSetBoundaryNarrowsWordChars(t *testing.T) {
	e := New(false)
	e.Insert("v1", "version1")

	// Under the default boundary set, digits are word characters, so "v1"
	// immediately followed by "x2" has no boundary after it.
	if matches := e.Extract("v1x2", true, 0); len(matches) != 0 {
		t.Fatalf("Extract() = %#v; want no match before narrowing the boundary set", matches)
	}

	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	if err := e.SetBoundary(letters); err != nil {
		t.Fatalf("SetBoundary() error = %v", err)
	}

	// Digits are no longer word characters, so the position right after
	// "v1" is now a boundary (a word char transitioning to a non-word
	// char), and the match succeeds.
	matches := e.Extract("v1x2", true, 0)
	if len(matches) != 1 || matches[0].Payload != "version1" {
		t.Fatalf("Extract() = %#v; want a single version1 match after narrowing the boundary set", matches)
	}
}

func TestLevenshteinNeighborsViaEngine(t *testing.T) {
	e := New(false)
	e.Insert("Skype", "skype")

	found := false
	for n := range e.LevenshteinNeighbors("Skpe", 1) {
		if n.CleanName == "skype" {
			found = true
		}
	}
	if !found {
		t.Fatal("LevenshteinNeighbors() did not report skype within budget 1")
	}
}

func TestBoundarySetDefault(t *testing.T) {
	e := New(false)
	set := e.BoundarySet()
	if len(set) != 63 { // 26 + 26 + 10 + 1 ('_')
		t.Fatalf("BoundarySet() has %d entries; want 63", len(set))
	}
}
