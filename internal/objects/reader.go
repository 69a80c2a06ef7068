package objects

import (
	"fmt"

	"github.com/KostasZigo/casgit/utils"
)

// ObjectReader is the single read path for blobs and trees.
type ObjectReader struct {
	store *ObjectStore
}

func NewObjectReader(store *ObjectStore) *ObjectReader {
	return &ObjectReader{store: store}
}

// ReadObject returns the kind and payload of the object stored under hash.
func (r *ObjectReader) ReadObject(hash string) (utils.ObjectType, []byte, error) {
	compressedData, err := r.store.Read(hash)
	if err != nil {
		return "", nil, err
	}

	data, err := Decompress(compressedData)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", hash, err)
	}

	if actual := utils.HashData(data); actual != hash {
		return "", nil, fmt.Errorf("%w: hash mismatch: expected %s, got %s", ErrCorruption, hash, actual)
	}

	kind, payload, err := Decode(data)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", hash, err)
	}

	return kind, payload, nil
}

// ReadBlob reads hash and requires it to be a blob.
func (r *ObjectReader) ReadBlob(hash string) (*Blob, error) {
	payload, err := r.readKind(hash, utils.BlobObjectType)
	if err != nil {
		return nil, err
	}
	return NewBlob(payload), nil
}

// ReadTree reads hash and parses its entries.
func (r *ObjectReader) ReadTree(hash string) (*Tree, error) {
	payload, err := r.readKind(hash, utils.TreeObjectType)
	if err != nil {
		return nil, err
	}

	tree, err := ParseTree(payload)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", hash, err)
	}
	return tree, nil
}

func (r *ObjectReader) readKind(hash string, want utils.ObjectType) ([]byte, error) {
	kind, payload, err := r.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, fmt.Errorf("%w: object %s is a %s, not a %s", ErrFormat, hash, kind, want)
	}
	return payload, nil
}
