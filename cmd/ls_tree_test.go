package cmd

import (
	"strings"
	"testing"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/KostasZigo/casgit/testutils"
	"github.com/stretchr/testify/require"
)

// buildTestTree stores the working tree of repoPath and returns the root hash.
func buildTestTree(t *testing.T, repoPath string, files map[string][]byte) string {
	t.Helper()

	testutils.CreateTestFiles(t, repoPath, files)
	hash, err := objects.NewTreeBuilder(objects.NewObjectStore(repoPath)).BuildTree(repoPath)
	require.NoError(t, err)
	return hash
}

func TestLsTreeCommand_TopLevel(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithCasgitDir(t)
	changeToRepoDir(t, repoPath)

	hash := buildTestTree(t, repoPath, map[string][]byte{
		"b.txt":     []byte("2"),
		"a.txt":     []byte("1"),
		"dir/c.txt": []byte("3"),
	})

	out, err := executeCmd(t, lsTreeCmd, constants.LsTreeCmdName, hash)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "56a6051ca2b02b04ef92d5150c9ef600403cb1de blob a.txt", lines[0])
	require.Equal(t, "d8263ee9860594d2806b0dfd1bfd17528b0ba2a4 blob b.txt", lines[1])
	require.True(t, strings.HasSuffix(lines[2], " tree dir"), lines[2])
}

func TestLsTreeCommand_Recursive(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithCasgitDir(t)
	changeToRepoDir(t, repoPath)

	hash := buildTestTree(t, repoPath, map[string][]byte{
		"a.txt":           []byte("1"),
		"dir/c.txt":       []byte("3"),
		"dir/sub/d.txt":   []byte("4"),
		"empty/.keep.txt": {},
	})

	out, err := executeCmd(t, lsTreeCmd, constants.LsTreeCmdName, "-r", hash)
	require.NoError(t, err)

	var names []string
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fields := strings.SplitN(line, " ", 3)
		require.Len(t, fields, 3)
		require.Equal(t, "blob", fields[1])
		names = append(names, fields[2])
	}
	require.Equal(t, []string{"a.txt", "dir/c.txt", "dir/sub/d.txt", "empty/.keep.txt"}, names)
}

func TestLsTreeCommand_EmptyTree(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithCasgitDir(t)
	changeToRepoDir(t, repoPath)

	hash := buildTestTree(t, repoPath, nil)
	require.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", hash)

	out, err := executeCmd(t, lsTreeCmd, constants.LsTreeCmdName, hash)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestLsTreeCommand_BlobHash(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithCasgitDir(t)
	changeToRepoDir(t, repoPath)

	blobHash := storeTestBlob(t, repoPath, []byte("not a tree"))

	_, err := executeCmd(t, lsTreeCmd, constants.LsTreeCmdName, blobHash)
	require.ErrorIs(t, err, objects.ErrFormat)
	require.Contains(t, err.Error(), "failed to read tree")
}

func TestLsTreeCommand_NotFound(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithCasgitDir(t)
	changeToRepoDir(t, repoPath)

	_, err := executeCmd(t, lsTreeCmd, constants.LsTreeCmdName, testutils.RandomHash())
	require.ErrorIs(t, err, objects.ErrNotFound)
}
