package sheet

import (
	"image"
	"path/filepath"
)

// Entry names one sprite and the region of the sheet it is cut from.
//
// Name is slash separated and carries no extension, e.g. "baby/happy". The
// directory part must already exist under the output root.
type Entry struct {
	Name string
	Rect image.Rectangle
}

// Table is an ordered list of entries. Entries are processed in order.
type Table []Entry

// Box is a shorthand for an Entry built from (left, top, right, bottom).
// The corners are stored as given; unlike image.Rect, an inverted box is
// not swapped around and crops to nothing.
func Box(name string, left, top, right, bottom int) Entry {
	return Entry{Name: name, Rect: image.Rectangle{Min: image.Pt(left, top), Max: image.Pt(right, bottom)}}
}

// Names returns the entry names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, e := range t {
		names = append(names, e.Name)
	}
	return names
}

// Lookup returns the entry with the passed name.
func (t Table) Lookup(name string) (Entry, bool) {
	for _, e := range t {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// OutputPath returns where the sprite with the passed name is written.
func OutputPath(root, name string) string {
	return filepath.Join(root, filepath.FromSlash(name)+".png")
}
