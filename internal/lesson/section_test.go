package lesson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionJSONShape(t *testing.T) {
	cases := []struct {
		section Section
		want    string
	}{
		{
			&TextSection{ID: "section-1", Title: "Overview", Content: "Some text"},
			`{"id":"section-1","title":"Overview","type":"text","content":"Some text"}`,
		},
		{
			&VocabularySection{
				ID:    "section-2",
				Title: "Words",
				Items: []VocabularyItem{{Word: "Hola", Translation: "Hello", Example: "¡Hola!"}},
			},
			`{"id":"section-2","title":"Words","type":"vocabulary","content":[{"word":"Hola","translation":"Hello","example":"¡Hola!"}]}`,
		},
		{
			&ExampleSection{ID: "section-3", Title: "Examples", Examples: []string{"Me llamo María."}},
			`{"id":"section-3","title":"Examples","type":"example","content":["Me llamo María."]}`,
		},
		{
			&GrammarSection{ID: "section-4", Title: "Rules", Content: "Tú vs usted"},
			`{"id":"section-4","title":"Rules","type":"grammar","content":"Tú vs usted"}`,
		},
		{
			&InteractiveSection{
				ID:      "section-5",
				Title:   "Practice",
				Prompt:  "Pick one",
				Options: []string{"a", "b"},
			},
			`{"id":"section-5","title":"Practice","type":"interactive","content":["Pick one","a","b"]}`,
		},
	}

	for _, c := range cases {
		raw, err := json.Marshal(c.section)
		require.NoError(t, err)
		assert.JSONEq(t, c.want, string(raw), "kind %s", c.section.Kind())
	}
}

func TestSectionJSONHasNoAnswerKey(t *testing.T) {
	raw, err := json.Marshal(&InteractiveSection{
		ID:      "section-5",
		Title:   "Practice",
		Prompt:  "Pick one",
		Options: []string{"a", "b"},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "correct")
	assert.NotContains(t, decoded, "correct_option")
}
