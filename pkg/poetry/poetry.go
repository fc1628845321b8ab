// Package poetry provides the poem model and poem libraries used by the
// poetry copybook layout.
//
// A poem is reference data: a title, the dynasty and author, and an ordered
// list of verse lines. Poems come from a [Library]; the built-in library
// ([Builtin]) ships a handful of classical Tang poems and [MongoLibrary]
// serves a larger collection from MongoDB.
//
// Poems travel to the layout engine either as an [Item] or as its JSON
// encoding. The JSON form accepts "content" as an array of verses or as a
// single string, which is split on Chinese sentence punctuation with
// [SplitVerses].
package poetry

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotFound is returned when a poem id is not in the library.
var ErrNotFound = errors.New("poem not found")

// Item is a single poem.
type Item struct {
	ID      string   `json:"id,omitempty" bson:"_id" toml:"id"`
	Title   string   `json:"title" bson:"title" toml:"title"`
	Dynasty string   `json:"dynasty" bson:"dynasty" toml:"dynasty"`
	Author  string   `json:"author" bson:"author" toml:"author"`
	Content []string `json:"content" bson:"content" toml:"content"`
}

// Library looks up poems by id.
type Library interface {
	// List returns all poems in library order.
	List(ctx context.Context) ([]Item, error)

	// Get returns the poem with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Item, error)
}

// Byline returns the "dynasty author" line shown under the title.
// Missing parts are omitted.
func (p Item) Byline() string {
	return strings.TrimSpace(p.Dynasty + " " + p.Author)
}

// Label returns a one-line description used by pickers, e.g. "静夜思 - 唐代 李白".
func (p Item) Label() string {
	if by := p.Byline(); by != "" {
		return p.Title + " - " + by
	}
	return p.Title
}

// Text returns the verses joined into one string, suitable as input for the
// regular (non-poetry) layouts.
func (p Item) Text() string {
	return strings.Join(p.Content, "")
}

// UnmarshalJSON decodes a poem whose content is either an array of verses or
// a single string of punctuated text.
func (p *Item) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID      json.RawMessage `json:"id"`
		Title   string          `json:"title"`
		Dynasty string          `json:"dynasty"`
		Author  string          `json:"author"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	content, err := decodeContent(aux.Content)
	if err != nil {
		return err
	}

	*p = Item{
		ID:      id,
		Title:   aux.Title,
		Dynasty: aux.Dynasty,
		Author:  aux.Author,
		Content: content,
	}
	return nil
}

// decodeID accepts both "1" and 1; library exports use either form.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func decodeContent(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return lines, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, err
	}
	return SplitVerses(text), nil
}

// versePunctuation ends a verse line.
const versePunctuation = "，。；！？"

// IsVerseBreak reports whether r ends a verse line.
func IsVerseBreak(r rune) bool {
	return strings.ContainsRune(versePunctuation, r)
}

// SplitVerses splits punctuated poem text into verse lines.
// Each line keeps its terminating punctuation mark and is trimmed of
// surrounding whitespace; a trailing line without punctuation is kept when
// non-empty. Lines that are blank after trimming are dropped.
func SplitVerses(text string) []string {
	var (
		lines   []string
		current strings.Builder
	)
	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}
	for _, r := range text {
		current.WriteRune(r)
		if IsVerseBreak(r) {
			flush()
		}
	}
	flush()
	return lines
}

// SplitOnPunctuation splits text on verse punctuation and discards the
// punctuation itself. Blank pieces are dropped and the rest trimmed.
func SplitOnPunctuation(text string) []string {
	fields := strings.FieldsFunc(text, IsVerseBreak)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			lines = append(lines, f)
		}
	}
	return lines
}
