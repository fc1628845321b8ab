package poetry

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"
)

func TestSplitVerses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "full stops",
			input: "床前明月光，疑是地上霜。举头望明月，低头思故乡。",
			want:  []string{"床前明月光，", "疑是地上霜。", "举头望明月，", "低头思故乡。"},
		},
		{
			name:  "trailing partial line",
			input: "春眠不觉晓，处处闻啼鸟",
			want:  []string{"春眠不觉晓，", "处处闻啼鸟"},
		},
		{
			name:  "whitespace trimmed",
			input: " 白日依山尽， 黄河入海流！ ",
			want:  []string{"白日依山尽，", "黄河入海流！"},
		},
		{
			name:  "all punctuation kinds",
			input: "甲；乙？丙！",
			want:  []string{"甲；", "乙？", "丙！"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "blank tail dropped",
			input: "天门中断楚江开。   ",
			want:  []string{"天门中断楚江开。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitVerses(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitVerses(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitOnPunctuation(t *testing.T) {
	got := SplitOnPunctuation("静夜思，李白。床前明月光，，  ")
	want := []string{"静夜思", "李白", "床前明月光"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitOnPunctuation() = %q, want %q", got, want)
	}
	if got := SplitOnPunctuation("，。"); len(got) != 0 {
		t.Errorf("SplitOnPunctuation(punctuation only) = %q, want empty", got)
	}
}

func TestItemUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Item
	}{
		{
			name: "array content",
			data: `{"id":"1","title":"静夜思","dynasty":"唐代","author":"李白","content":["床前明月光","疑是地上霜"]}`,
			want: Item{ID: "1", Title: "静夜思", Dynasty: "唐代", Author: "李白", Content: []string{"床前明月光", "疑是地上霜"}},
		},
		{
			name: "string content",
			data: `{"title":"春晓","dynasty":"唐代","author":"孟浩然","content":"春眠不觉晓，处处闻啼鸟。"}`,
			want: Item{Title: "春晓", Dynasty: "唐代", Author: "孟浩然", Content: []string{"春眠不觉晓，", "处处闻啼鸟。"}},
		},
		{
			name: "numeric id",
			data: `{"id":4,"title":"登鹳雀楼"}`,
			want: Item{ID: "4", Title: "登鹳雀楼"},
		},
		{
			name: "missing content",
			data: `{"title":"无题"}`,
			want: Item{Title: "无题"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Item
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestItemUnmarshalJSONErrors(t *testing.T) {
	for _, data := range []string{`[1,2]`, `{"content":42}`, `{"id":true}`, `not json`} {
		var it Item
		if err := json.Unmarshal([]byte(data), &it); err == nil {
			t.Errorf("Unmarshal(%s) expected error", data)
		}
	}
}

func TestItemHelpers(t *testing.T) {
	p := Item{Title: "静夜思", Dynasty: "唐代", Author: "李白", Content: []string{"床前明月光", "疑是地上霜"}}

	if got := p.Byline(); got != "唐代 李白" {
		t.Errorf("Byline() = %q, want %q", got, "唐代 李白")
	}
	if got := p.Label(); got != "静夜思 - 唐代 李白" {
		t.Errorf("Label() = %q", got)
	}
	if got := p.Text(); got != "床前明月光疑是地上霜" {
		t.Errorf("Text() = %q", got)
	}

	anon := Item{Title: "无题", Author: "佚名"}
	if got := anon.Byline(); got != "佚名" {
		t.Errorf("Byline() without dynasty = %q, want %q", got, "佚名")
	}
	if got := (Item{Title: "无题"}).Label(); got != "无题" {
		t.Errorf("Label() without byline = %q", got)
	}
}

func TestBuiltinLibrary(t *testing.T) {
	ctx := context.Background()
	lib := Builtin()

	items, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("List() returned %d poems, want 5", len(items))
	}
	if items[0].Title != "静夜思" {
		t.Errorf("first poem = %q, want 静夜思", items[0].Title)
	}

	p, err := lib.Get(ctx, "3")
	if err != nil {
		t.Fatalf("Get(3) error = %v", err)
	}
	if p.Title != "春晓" || len(p.Content) != 4 {
		t.Errorf("Get(3) = %+v", p)
	}

	// Returned poems are copies.
	p.Content[0] = "changed"
	again, _ := lib.Get(ctx, "3")
	if again.Content[0] != "春眠不觉晓" {
		t.Error("Get() should return an independent copy")
	}

	if _, err := lib.Get(ctx, "99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}
}

func TestMongoLibrary(t *testing.T) {
	uri := os.Getenv("COPYBOOK_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("COPYBOOK_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lib, err := NewMongoLibrary(ctx, MongoConfig{
		URI:        uri,
		Database:   "copybook_test",
		Collection: "poems_" + time.Now().Format("150405.000000"),
	})
	if err != nil {
		t.Fatalf("NewMongoLibrary() error = %v", err)
	}
	defer lib.Close(ctx)
	defer lib.coll.Drop(ctx)

	seed, _ := Builtin().List(ctx)
	if err := lib.Seed(ctx, seed); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	items, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != len(seed) {
		t.Errorf("List() returned %d poems, want %d", len(items), len(seed))
	}

	p, err := lib.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if !reflect.DeepEqual(p, seed[0]) {
		t.Errorf("Get(1) = %+v, want %+v", p, seed[0])
	}

	if _, err := lib.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestNewMongoLibraryRequiresURI(t *testing.T) {
	if _, err := NewMongoLibrary(context.Background(), MongoConfig{}); err == nil {
		t.Error("NewMongoLibrary() with empty URI should fail")
	}
}
