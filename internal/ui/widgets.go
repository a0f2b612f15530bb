package ui

import (
	"unicode/utf8"
)

// Widget is an interactive node. Engine.Update routes clicks and keys to widgets; Engine.Draw
// draws their content on top of the node's background and border.
type Widget interface {
	Node() *Node
}

// Button calls OnClick when clicked.
type Button struct {
	node    *Node
	OnClick func()
}

// NewButton returns a button labelled text with CSS id id and class "button".
func NewButton(id, text string, onClick func()) *Button {
	return &Button{node: NewNode("button", "button", id, text), OnClick: onClick}
}

func (b *Button) Node() *Node { return b.node }

// Click runs OnClick.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// TextField edits the string Value points at. The string is owned by the caller (e.g. a form).
type TextField struct {
	node  *Node
	Value *string
}

// NewTextField binds a field with CSS id id and class "field" to value.
func NewTextField(id string, value *string) *TextField {
	return &TextField{node: NewNode("field", "field", id, ""), Value: value}
}

func (f *TextField) Node() *Node { return f.node }

// Insert appends typed characters, skipping control runes.
func (f *TextField) Insert(chars []rune) {
	for _, c := range chars {
		if c < 32 || c == 127 {
			continue
		}
		*f.Value += string(c)
	}
}

// Backspace removes the last rune.
func (f *TextField) Backspace() {
	if len(*f.Value) == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(*f.Value)
	*f.Value = (*f.Value)[:len(*f.Value)-size]
}

// ListModel is the ordered list of labels a ListView shows.
type ListModel interface {
	Len() int
	Item(i int) string
}

// ListView shows Model one row per item. Selected is the highlighted row or -1.
type ListView struct {
	node      *Node
	Model     ListModel
	RowHeight float32
	Selected  int
	OnSelect  func(row int)
	scroll    int
}

// NewListView returns a list with CSS id id and class "list".
func NewListView(id string, model ListModel, onSelect func(row int)) *ListView {
	return &ListView{
		node:      NewNode("list", "list", id, ""),
		Model:     model,
		RowHeight: defaultFontSize + 6,
		Selected:  -1,
		OnSelect:  onSelect,
	}
}

func (l *ListView) Node() *Node { return l.node }

// visibleRows is how many rows fit in the bounds.
func (l *ListView) visibleRows() int {
	if l.RowHeight <= 0 {
		return 0
	}
	return int(l.node.Bounds.Height / l.RowHeight)
}

// RowAt maps a y coordinate to a model row, or -1 when no row is there.
func (l *ListView) RowAt(y float32) int {
	off := y - l.node.Bounds.Y
	if off < 0 {
		return -1
	}
	row := int(off/l.RowHeight) + l.firstRow()
	if row >= l.Model.Len() {
		return -1
	}
	return row
}

// Scroll moves the first visible row by delta rows, clamped to the model.
func (l *ListView) Scroll(delta int) {
	l.scroll += delta
	l.clamp()
}

// clamp keeps scroll in range; the model can shrink between frames.
func (l *ListView) clamp() {
	if last := l.Model.Len() - l.visibleRows(); l.scroll > last {
		l.scroll = last
	}
	if l.scroll < 0 {
		l.scroll = 0
	}
}

// Select highlights row and reports it to OnSelect. Rows outside the model are ignored.
func (l *ListView) Select(row int) {
	if row < 0 || row >= l.Model.Len() {
		return
	}
	l.Selected = row
	if l.OnSelect != nil {
		l.OnSelect(row)
	}
}

// firstRow is the model row drawn at the top.
func (l *ListView) firstRow() int {
	l.clamp()
	return l.scroll
}
