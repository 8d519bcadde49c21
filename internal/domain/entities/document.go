package entities

// Node is one entry of a Document: either a leaf holding a translated string
// or a branch holding a nested Document.
type Node struct {
	Value    string
	Children *Document
}

// IsLeaf reports whether the node holds a string value.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Document is a nested tree of translated strings for one language. Keys
// keep their first-insertion order; overwriting a key keeps its position.
type Document struct {
	keys    []string
	entries map[string]*Node
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{entries: make(map[string]*Node)}
}

// Entry is one (path, value) leaf of a flattened Document.
type Entry struct {
	Path  []string
	Value string
}

// Set assigns value at path, creating intermediate levels as needed.
// The last write wins: a leaf standing where a branch is needed is replaced
// by a branch, and a branch at the final segment is replaced by the leaf.
func (d *Document) Set(path []string, value string) {
	if len(path) == 0 {
		return
	}
	cur := d
	last := len(path) - 1
	for _, seg := range path[:last] {
		n, ok := cur.entries[seg]
		if !ok || n.IsLeaf() {
			n = &Node{Children: NewDocument()}
			cur.put(seg, n)
		}
		cur = n.Children
	}
	cur.put(path[last], &Node{Value: value})
}

// Get returns the leaf value at path.
func (d *Document) Get(path []string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	cur := d
	for i, seg := range path {
		n, ok := cur.entries[seg]
		if !ok {
			return "", false
		}
		if i == len(path)-1 {
			if !n.IsLeaf() {
				return "", false
			}
			return n.Value, true
		}
		if n.IsLeaf() {
			return "", false
		}
		cur = n.Children
	}
	return "", false
}

// Keys returns the top-level keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Lookup returns the top-level node stored under key.
func (d *Document) Lookup(key string) (*Node, bool) {
	n, ok := d.entries[key]
	return n, ok
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Flatten lists every leaf of the document, depth first, in key order.
func (d *Document) Flatten() []Entry {
	var out []Entry
	d.flatten(nil, &out)
	return out
}

func (d *Document) flatten(prefix []string, out *[]Entry) {
	for _, k := range d.keys {
		n := d.entries[k]
		path := make([]string, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = k
		if n.IsLeaf() {
			*out = append(*out, Entry{Path: path, Value: n.Value})
			continue
		}
		n.Children.flatten(path, out)
	}
}

// ToMap converts the document into plain nested maps (key order is lost).
func (d *Document) ToMap() map[string]any {
	m := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		n := d.entries[k]
		if n.IsLeaf() {
			m[k] = n.Value
		} else {
			m[k] = n.Children.ToMap()
		}
	}
	return m
}

func (d *Document) put(key string, n *Node) {
	if _, exists := d.entries[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = n
}
