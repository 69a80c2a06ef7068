package objects

import "github.com/KostasZigo/casgit/utils"

// Object represents any casgit object that can be stored.
// Blobs and trees both implement it and share the same header scheme.
type Object interface {
	// Hash returns the SHA-1 hash of the object
	Hash() string

	// Type returns the kind written into the header
	Type() utils.ObjectType

	// Content returns the payload without header
	Content() []byte
}
