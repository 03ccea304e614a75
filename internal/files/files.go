// Package files holds the in-memory tree of scanned filesystem entries.
package files

import (
	"sort"
	"strings"
)

// FileOrFolder is an entry in the scanned tree.
type FileOrFolder interface {
	Name() string
	Size() int64
	isEntry()
}

// File is a leaf entry. Symlinks and other non-directories are Files.
type File struct {
	name string
	size int64
}

// NewFile creates a File.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

// Name returns the base name of the file.
func (f *File) Name() string { return f.name }

// Size returns the size in bytes.
func (f *File) Size() int64 { return f.size }

func (*File) isEntry() {}

// Folder is a directory with its aggregated size and descendant count.
type Folder struct {
	name           string
	size           int64
	NumDescendants int
	contents       []FileOrFolder
}

// NewFolder creates an empty Folder.
func NewFolder(name string) *Folder {
	return &Folder{name: name}
}

// Name returns the base name of the folder.
func (f *Folder) Name() string { return f.name }

// Size returns the total size of all descendants in bytes.
func (f *Folder) Size() int64 { return f.size }

func (*Folder) isEntry() {}

// Contents returns the children ordered by size (largest first), then name.
func (f *Folder) Contents() []FileOrFolder {
	return f.contents
}

// Add inserts a child and updates the aggregated size and count.
func (f *Folder) Add(child FileOrFolder) {
	i := sort.Search(len(f.contents), func(i int) bool {
		return less(child, f.contents[i])
	})
	f.contents = append(f.contents, nil)
	copy(f.contents[i+1:], f.contents[i:])
	f.contents[i] = child

	f.size += child.Size()
	f.NumDescendants += countOf(child)
}

// Child returns the direct child with the given name.
func (f *Folder) Child(name string) (FileOrFolder, bool) {
	for _, c := range f.contents {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Folder walks segments from f and returns the folder they name.
// An empty path returns f itself.
func (f *Folder) Folder(segments []string) (*Folder, bool) {
	cur := f
	for _, seg := range segments {
		c, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		next, ok := c.(*Folder)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Remove deletes the entry at segments+name from the tree and subtracts its
// size and count from every ancestor. It reports the removed entry.
func (f *Folder) Remove(segments []string, name string) (FileOrFolder, bool) {
	chain := []*Folder{f}
	cur := f
	for _, seg := range segments {
		c, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		next, ok := c.(*Folder)
		if !ok {
			return nil, false
		}
		chain = append(chain, next)
		cur = next
	}

	idx := -1
	for i, c := range cur.contents {
		if c.Name() == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	removed := cur.contents[idx]
	cur.contents = append(cur.contents[:idx], cur.contents[idx+1:]...)

	size, count := removed.Size(), countOf(removed)
	for _, folder := range chain {
		folder.size -= size
		folder.NumDescendants -= count
	}
	return removed, true
}

func less(a, b FileOrFolder) bool {
	if a.Size() != b.Size() {
		return a.Size() > b.Size()
	}
	return strings.Compare(a.Name(), b.Name()) < 0
}

// countOf returns how many entries child contributes to its parent's
// descendant count: itself plus everything below it.
func countOf(child FileOrFolder) int {
	if folder, ok := child.(*Folder); ok {
		return folder.NumDescendants + 1
	}
	return 1
}
