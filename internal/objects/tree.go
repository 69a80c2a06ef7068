package objects

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/utils"
)

// TreeEntry represents a single entry in a tree object.
// The referenced object is owned by the store, the entry only holds its hash.
type TreeEntry struct {
	name string
	kind utils.ObjectType
	hash string
}

func NewTreeEntry(kind utils.ObjectType, name string, hash string) (*TreeEntry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: invalid entry type %q", ErrFormat, kind)
	}
	if err := validateEntryName(name); err != nil {
		return nil, err
	}
	if !utils.IsValidHash(hash) {
		return nil, fmt.Errorf("%w: invalid hash %q for entry %q", ErrFormat, hash, name)
	}
	return &TreeEntry{
		name: name,
		kind: kind,
		hash: hash,
	}, nil
}

// validateEntryName rejects names that cannot round-trip through the line format.
func validateEntryName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: invalid entry name %q", ErrFormat, name)
	}
	if strings.ContainsAny(name, "/\n\x00") {
		return fmt.Errorf("%w: entry name %q contains a separator", ErrFormat, name)
	}
	return nil
}

func (e *TreeEntry) Kind() utils.ObjectType {
	return e.kind
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) Hash() string {
	return e.hash
}

func (e *TreeEntry) IsDirectory() bool {
	return e.kind == utils.TreeObjectType
}

// String renders the entry as its serialized line "<hash> <kind> <name>".
func (e *TreeEntry) String() string {
	return e.hash + " " + string(e.kind) + " " + e.name
}

// Tree represents a directory listing.
type Tree struct {
	entries []TreeEntry
	hash    string
}

// NewTree creates a tree object from the list of Tree Entries.
// Entries are copied and sorted by name so the hash never depends on input order.
func NewTree(treeEntries []TreeEntry) (*Tree, error) {
	entries := make([]TreeEntry, len(treeEntries))
	copy(entries, treeEntries)

	slices.SortFunc(entries, compareTreeEntries)

	for i := 1; i < len(entries); i++ {
		if entries[i].name == entries[i-1].name {
			return nil, fmt.Errorf("%w: duplicate entry name %q", ErrFormat, entries[i].name)
		}
	}

	hash, err := utils.ComputeHash(buildTreeContent(entries), utils.TreeObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for tree: %w", err)
	}

	return &Tree{
		entries: entries,
		hash:    hash,
	}, nil
}

// compareTreeEntries orders entries byte-wise by name. Unlike git, directories get no trailing "/".
func compareTreeEntries(a, b TreeEntry) int {
	return strings.Compare(a.name, b.name)
}

// buildTreeContent serializes entries one per line, no trailing newline:
// <hash> blob README.md
// <hash> tree src
func buildTreeContent(entries []TreeEntry) []byte {
	var buf bytes.Buffer

	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(constants.TreeEntrySeparator)
		}
		buf.WriteString(entry.String())
	}

	return buf.Bytes()
}

// ParseTree rebuilds a tree from its serialized payload.
func ParseTree(content []byte) (*Tree, error) {
	if len(content) == 0 {
		return NewTree(nil)
	}

	lines := bytes.Split(content, []byte{constants.TreeEntrySeparator})
	entries := make([]TreeEntry, 0, len(lines))
	for _, line := range lines {
		fields := strings.SplitN(string(line), " ", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: malformed tree entry %q", ErrFormat, line)
		}

		entry, err := NewTreeEntry(utils.ObjectType(fields[1]), fields[2], fields[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	tree, err := NewTree(entries)
	if err != nil {
		return nil, err
	}

	// Stored trees are canonical; anything else was not produced by NewTree.
	if !bytes.Equal(tree.Content(), content) {
		return nil, fmt.Errorf("%w: tree entries are not in canonical order", ErrFormat)
	}

	return tree, nil
}

// Hash returns the SHA-1 hash of the tree
func (t *Tree) Hash() string {
	return t.hash
}

func (t *Tree) Type() utils.ObjectType {
	return utils.TreeObjectType
}

// Entries returns all tree entries
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// Content returns the raw tree content
func (t *Tree) Content() []byte {
	return buildTreeContent(t.entries)
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for _, entry := range t.entries {
		if entry.Name() == name {
			return &entry, true
		}
	}
	return nil, false
}
