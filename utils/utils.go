package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KostasZigo/casgit/internal/constants"
)

type ObjectType string

const (
	BlobObjectType ObjectType = "blob"
	TreeObjectType ObjectType = "tree"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType:
		return true
	default:
		return false
	}
}

// ParseObjectType converts a header kind into an ObjectType.
func ParseObjectType(kind string) (ObjectType, error) {
	ot := ObjectType(kind)
	if !ot.IsValid() {
		return "", fmt.Errorf("invalid object type: %q", kind)
	}
	return ot, nil
}

// BuildHeader returns "<type> <size>\0" for the given payload length.
func BuildHeader(objectType ObjectType, size int) []byte {
	header := make([]byte, 0, len(objectType)+12)
	header = append(header, objectType...)
	header = append(header, constants.HeaderSeparator)
	header = strconv.AppendInt(header, int64(size), 10)
	return append(header, constants.NullByte)
}

// BuildObjectData returns header followed by content, the exact bytes that get hashed and compressed.
func BuildObjectData(content []byte, objectType ObjectType) []byte {
	header := BuildHeader(objectType, len(content))
	data := make([]byte, 0, len(header)+len(content))
	data = append(data, header...)
	return append(data, content...)
}

// HashData returns the lower-case hex SHA-1 of already framed object data.
func HashData(data []byte) string {
	hash := sha1.Sum(data)
	return hex.EncodeToString(hash[:])
}

// ComputeHash calculates SHA-1 hash for Object content
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	return HashData(BuildObjectData(content, objectType)), nil
}

// IsValidHash reports whether hash is a 40 character lower-case hex SHA-1.
func IsValidHash(hash string) bool {
	if len(hash) != constants.HashStringLength {
		return false
	}
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// BuildDirPath constructs os-agnostic display direcotry path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
