package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/afero"
)

var objectsRelativeFilePath string = filepath.Join(constants.Casgit, constants.Objects)

// ObjectStore maps hashes to compressed object bytes under .casgit/objects/<first 2 chars>/<rest>.
// The store is append-only: an object, once written, is never rewritten.
type ObjectStore struct {
	fs       afero.Fs
	repoPath string // Path to repository root
	codec    *Codec
}

// NewObjectStore returns a store on the OS filesystem using the default codec.
func NewObjectStore(repoPath string) *ObjectStore {
	return NewObjectStoreWithFs(afero.NewOsFs(), repoPath, DefaultCodec)
}

func NewObjectStoreWithFs(fs afero.Fs, repoPath string, codec *Codec) *ObjectStore {
	if codec == nil {
		codec = DefaultCodec
	}
	return &ObjectStore{
		fs:       fs,
		repoPath: repoPath,
		codec:    codec,
	}
}

// Codec returns the codec used by Store.
func (store *ObjectStore) Codec() *Codec {
	return store.codec
}

// Fs returns the filesystem the store writes to.
func (store *ObjectStore) Fs() afero.Fs {
	return store.fs
}

// objectPath returns the file an object with hash is stored at.
func (store *ObjectStore) objectPath(hash string) (string, error) {
	if !utils.IsValidHash(hash) {
		return "", fmt.Errorf("%w: invalid object hash %q", ErrFormat, hash)
	}
	return filepath.Join(store.repoPath, objectsRelativeFilePath,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:]), nil
}

// Store encodes obj with the store codec and writes it.
func (store *ObjectStore) Store(obj Object) error {
	hash, compressed, err := store.codec.EncodeObject(obj.Type(), obj.Content())
	if err != nil {
		return err
	}
	if hash != obj.Hash() {
		return fmt.Errorf("%w: object hash %s does not match content hash %s", ErrFormat, obj.Hash(), hash)
	}
	return store.Write(hash, compressed)
}

// Write persists compressed bytes under hash.
// Returns nil without touching the file if the object already exists: equal hashes carry equal bytes.
// The bytes go to a temp file in the fan-out directory which is renamed into place,
// so a reader never observes a partially written object.
func (store *ObjectStore) Write(hash string, compressed []byte) error {
	objectFile, err := store.objectPath(hash)
	if err != nil {
		return err
	}

	exists, err := store.exists(objectFile)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	objectDir := filepath.Dir(objectFile)
	if err := store.fs.MkdirAll(objectDir, constants.DirPerms); err != nil {
		return fmt.Errorf("%w: failed to create object directory: %w", ErrIO, err)
	}

	if err := store.writeAtomic(objectDir, objectFile, compressed); err != nil {
		return fmt.Errorf("%w: failed to write object %s: %w", ErrIO, hash, err)
	}

	return nil
}

// writeAtomic is tempfile -> write -> fsync -> close -> rename, removing the tempfile on failure.
func (store *ObjectStore) writeAtomic(dir, target string, data []byte) (err error) {
	tmp, err := afero.TempFile(store.fs, dir, constants.TempObjectPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			store.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = store.fs.Chmod(tmpName, constants.ObjectPerms); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = store.fs.Rename(tmpName, target); err != nil {
		// A concurrent writer may have landed the same bytes first
		if _, statErr := store.fs.Stat(target); statErr == nil {
			store.fs.Remove(tmpName)
			return nil
		}
		return fmt.Errorf("rename temp to target: %w", err)
	}
	return nil
}

// Read returns the compressed bytes stored under hash.
func (store *ObjectStore) Read(hash string) ([]byte, error) {
	objectFile, err := store.objectPath(hash)
	if err != nil {
		return nil, err
	}

	compressedData, err := afero.ReadFile(store.fs, objectFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read object file %s: %w", ErrIO, hash, err)
	}

	return compressedData, nil
}

// Exists checks if an object exists in storage
func (store *ObjectStore) Exists(hash string) bool {
	objectFile, err := store.objectPath(hash)
	if err != nil {
		return false
	}
	exists, err := store.exists(objectFile)
	return err == nil && exists
}

func (store *ObjectStore) exists(objectFile string) (bool, error) {
	_, err := store.fs.Stat(objectFile)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: failed to stat object file: %w", ErrIO, err)
}
