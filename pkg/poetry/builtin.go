package poetry

import (
	"context"
	"fmt"
	"slices"
)

var builtinPoems = []Item{
	{
		ID:      "1",
		Title:   "静夜思",
		Author:  "李白",
		Dynasty: "唐代",
		Content: []string{"床前明月光", "疑是地上霜", "举头望明月", "低头思故乡"},
	},
	{
		ID:      "2",
		Title:   "望庐山瀑布",
		Author:  "李白",
		Dynasty: "唐代",
		Content: []string{"日照香炉生紫烟", "遥看瀑布挂前川", "飞流直下三千尺", "疑是银河落九天"},
	},
	{
		ID:      "3",
		Title:   "春晓",
		Author:  "孟浩然",
		Dynasty: "唐代",
		Content: []string{"春眠不觉晓", "处处闻啼鸟", "夜来风雨声", "花落知多少"},
	},
	{
		ID:      "4",
		Title:   "登鹳雀楼",
		Author:  "王之涣",
		Dynasty: "唐代",
		Content: []string{"白日依山尽", "黄河入海流", "欲穷千里目", "更上一层楼"},
	},
	{
		ID:      "5",
		Title:   "望天门山",
		Author:  "李白",
		Dynasty: "唐代",
		Content: []string{"天门中断楚江开", "碧水东流至此回", "两岸青山相对出", "孤帆一片日边来"},
	},
}

// StaticLibrary is an in-memory, ordered, read-only poem library.
type StaticLibrary struct {
	items []Item
}

// Builtin returns the library of poems shipped with copybook.
func Builtin() *StaticLibrary {
	return NewStaticLibrary(builtinPoems)
}

// NewStaticLibrary creates a library over a copy of items.
// Items must have unique, non-empty ids.
func NewStaticLibrary(items []Item) *StaticLibrary {
	cp := make([]Item, len(items))
	for i, it := range items {
		it.Content = slices.Clone(it.Content)
		cp[i] = it
	}
	return &StaticLibrary{items: cp}
}

// List returns all poems in library order.
func (l *StaticLibrary) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(l.items))
	for i, it := range l.items {
		it.Content = slices.Clone(it.Content)
		out[i] = it
	}
	return out, nil
}

// Get returns the poem with the given id.
func (l *StaticLibrary) Get(ctx context.Context, id string) (Item, error) {
	for _, it := range l.items {
		if it.ID == id {
			it.Content = slices.Clone(it.Content)
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

var _ Library = (*StaticLibrary)(nil)
