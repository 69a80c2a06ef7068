package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	InitCmdName       = "init"
	HashObjectCmdName = "hash-object"
	CatFileCmdName    = "cat-file"
	WriteTreeCmdName  = "write-tree"
	LsTreeCmdName     = "ls-tree"
)

// Repository directory and file names define the casgit metadata structure.
const (
	// Casgit is the repository control directory. Tree building never descends into it.
	Casgit = ".casgit"

	// Objects stores content-addressable objects (blobs, trees).
	Objects = "objects"

	// Refs contains branch and tag references.
	Refs = "refs"

	// Heads stores branch pointers under refs/.
	Heads = "heads"

	// Tags stores tag pointers under refs/.
	Tags = "tags"

	// Head points to current branch.
	Head = "HEAD"
)

// Default repository values.
const (
	// DefaultBranch is the initial branch name for new repositories.
	DefaultBranch = "main"

	// DefaultRefPrefix is prepended to branch names in HEAD file.
	DefaultRefPrefix = "ref: refs/heads/"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644

	// ObjectPerms makes stored objects read-only (r--r--r--), they are never rewritten.
	ObjectPerms os.FileMode = 0444
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2
)

// Object format constants.
const (
	// NullByte separates header from content in objects.
	NullByte = '\x00'

	// HeaderSeparator separates the kind from the decimal length in a header.
	HeaderSeparator = ' '

	// TreeEntrySeparator separates serialized tree entry lines.
	TreeEntrySeparator = '\n'

	// TempObjectPattern names in-flight object files inside a fan-out directory.
	TempObjectPattern = ".tmp-obj-*"
)

// Environment and configuration keys.
const (
	// EnvPrefix is prepended to every configuration key read from the environment.
	EnvPrefix = "CASGIT"

	RepoKey             = "repo"
	VerboseKey          = "verbose"
	CompressionLevelKey = "compression-level"
)
