package objects

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/afero"
)

// memRepoPath is the repository root used by in-memory stores.
const memRepoPath = "/repo"

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, kind utils.ObjectType, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(kind, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}

// assertTreeEntryEqual verifies two tree entries match.
func assertTreeEntryEqual(t *testing.T, actual, expected TreeEntry) {
	t.Helper()

	if actual.Name() != expected.Name() {
		t.Errorf("Entry name mismatch: expected %s, got %s", expected.Name(), actual.Name())
	}
	if actual.Hash() != expected.Hash() {
		t.Errorf("Entry hash mismatch: expected %s, got %s", expected.Hash(), actual.Hash())
	}
	if actual.Kind() != expected.Kind() {
		t.Errorf("Entry kind mismatch: expected %s, got %s", expected.Kind(), actual.Kind())
	}
}

// newOsStore creates a store over a temporary repository on disk.
func newOsStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := t.TempDir()
	objectsDir := filepath.Join(repoPath, constants.Casgit, constants.Objects)
	if err := os.MkdirAll(objectsDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create %s: %v", objectsDir, err)
	}

	return NewObjectStore(repoPath), repoPath
}

// newMemStore creates a store over an in-memory filesystem rooted at memRepoPath.
func newMemStore(t *testing.T) *ObjectStore {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(filepath.Join(memRepoPath, constants.Casgit, constants.Objects), constants.DirPerms); err != nil {
		t.Fatalf("Failed to create in-memory objects dir: %v", err)
	}

	return NewObjectStoreWithFs(fs, memRepoPath, DefaultCodec)
}

// writeMemFiles writes relative paths under memRepoPath in the store filesystem.
func writeMemFiles(t *testing.T, store *ObjectStore, files map[string][]byte) {
	t.Helper()

	for relPath, content := range files {
		path := filepath.Join(memRepoPath, filepath.FromSlash(relPath))
		if err := store.Fs().MkdirAll(filepath.Dir(path), constants.DirPerms); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", relPath, err)
		}
		if err := afero.WriteFile(store.Fs(), path, content, constants.FilePerms); err != nil {
			t.Fatalf("Failed to write %s: %v", relPath, err)
		}
	}
}

// withLister replaces the directory listing used by builder.
func withLister(builder *TreeBuilder, lister dirLister) *TreeBuilder {
	builder.listDir = lister
	return builder
}

// storeBlob encodes content with the default codec and writes it.
func storeBlob(t *testing.T, store *ObjectStore, content []byte) string {
	t.Helper()

	hash, compressed, err := DefaultCodec.Encode(content)
	if err != nil {
		t.Fatalf("Failed to encode blob: %v", err)
	}
	if err := store.Write(hash, compressed); err != nil {
		t.Fatalf("Failed to write blob: %v", err)
	}

	return hash
}
