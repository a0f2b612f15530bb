package scene

// NameModel is the ordered list of labels the list view shows, one row per live object.
type NameModel struct {
	names []string
}

// Len returns the number of rows.
func (m *NameModel) Len() int { return len(m.names) }

// Item returns the label at row i, or "" when i is out of range.
func (m *NameModel) Item(i int) string {
	if i < 0 || i >= len(m.names) {
		return ""
	}
	return m.names[i]
}

func (m *NameModel) appendRow(name string) {
	m.names = append(m.names, name)
}

func (m *NameModel) removeRow(i int) {
	m.names = append(m.names[:i], m.names[i+1:]...)
}

func (m *NameModel) reset() {
	m.names = m.names[:0]
}
