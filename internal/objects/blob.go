package objects

import (
	"fmt"

	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/afero"
)

// Blob holds the raw bytes of a single file. Content is never decoded as text.
type Blob struct {
	content []byte
	hash    string
}

func NewBlob(content []byte) *Blob {
	hash, _ := utils.ComputeHash(content, utils.BlobObjectType)
	return &Blob{
		content: content,
		hash:    hash,
	}
}

// NewBlobFromFile reads path byte-exact from the OS filesystem.
func NewBlobFromFile(filepath string) (*Blob, error) {
	return NewBlobFromFs(afero.NewOsFs(), filepath)
}

func NewBlobFromFs(fs afero.Fs, filepath string) (*Blob, error) {
	content, err := afero.ReadFile(fs, filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file %s: %w", ErrIO, filepath, err)
	}
	return NewBlob(content), nil
}

func (b *Blob) Hash() string {
	return b.hash
}

func (b *Blob) Type() utils.ObjectType {
	return utils.BlobObjectType
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Size() int {
	return len(b.content)
}
