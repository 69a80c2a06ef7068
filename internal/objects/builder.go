package objects

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/afero"
)

// dirLister returns the immediate entries of dir in any order.
type dirLister func(fs afero.Fs, dir string) ([]os.FileInfo, error)

// TreeBuilder snapshots a directory hierarchy into blob and tree objects.
// Each recursive call receives its own path and returns its own hash; no state is shared between calls.
type TreeBuilder struct {
	store   *ObjectStore
	fs      afero.Fs
	listDir dirLister
}

func NewTreeBuilder(store *ObjectStore) *TreeBuilder {
	return &TreeBuilder{
		store:   store,
		fs:      store.Fs(),
		listDir: afero.ReadDir,
	}
}

// BuildTree stores every file under dirPath as a blob, every subdirectory as a tree,
// and returns the hash of the tree for dirPath itself.
// The repository control directory is skipped at every level, as are symlinks and special files.
// If any entry cannot be read the tree for dirPath is not stored.
func (b *TreeBuilder) BuildTree(dirPath string) (string, error) {
	infos, err := b.listDir(b.fs, dirPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to list directory %s: %w", ErrIO, dirPath, err)
	}

	entries := make([]TreeEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if name == constants.Casgit {
			continue
		}

		childPath := filepath.Join(dirPath, name)

		var (
			kind utils.ObjectType
			hash string
		)
		switch {
		case info.Mode().IsRegular():
			kind = utils.BlobObjectType
			hash, err = b.writeBlob(childPath)
		case info.IsDir():
			kind = utils.TreeObjectType
			hash, err = b.BuildTree(childPath)
		default:
			continue
		}
		if err != nil {
			return "", err
		}

		entry, err := NewTreeEntry(kind, name, hash)
		if err != nil {
			return "", fmt.Errorf("%s: %w", childPath, err)
		}
		entries = append(entries, *entry)
	}

	tree, err := NewTree(entries)
	if err != nil {
		return "", err
	}

	if err := b.store.Store(tree); err != nil {
		return "", err
	}

	return tree.Hash(), nil
}

// writeBlob reads path byte-exact and stores it as a blob.
func (b *TreeBuilder) writeBlob(path string) (string, error) {
	blob, err := NewBlobFromFs(b.fs, path)
	if err != nil {
		return "", err
	}

	if err := b.store.Store(blob); err != nil {
		return "", err
	}

	return blob.Hash(), nil
}
