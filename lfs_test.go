package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTracked(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{
		"lfs track": "Listing tracked patterns\n" +
			"    Tracking \"*.mp4\"\n" +
			"    Tracking \"assets/video/*.mp4\"\n" +
			"Listing excluded patterns\n",
	}}
	c := &LFSClient{git: git}

	patterns, err := c.ListTracked()
	require.NoError(t, err)
	assert.Equal(t, []string{"*.mp4", "assets/video/*.mp4"}, patterns)
}

func TestStatusTwoSections(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{
		"lfs status": "On branch main\n" +
			"\n" +
			"Tracked files:\n" +
			"\tdata/model.bin (5 MB)\n" +
			"\tassets/intro.mp4 (12 MB)\n" +
			"\n" +
			"Objects not tracked by Git LFS:\n" +
			"\tREADME.md (1 KB)\n",
	}}
	c := &LFSClient{git: git}

	status, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"data/model.bin (5 MB)", "assets/intro.mp4 (12 MB)"}, status.Tracked)
	assert.Equal(t, []string{"README.md (1 KB)"}, status.NotTracked)
}

func TestStatusSkipsParentheticalNotes(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{
		"lfs status": "Tracked files:\n" +
			"\t(use \"git reset\" to unstage)\n" +
			"\tbig.bin (3 MB)\n",
	}}
	c := &LFSClient{git: git}

	status, err := c.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"big.bin (3 MB)"}, status.Tracked)
}

func TestAddAndCommitAttributes(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{}}
	c := &LFSClient{git: git}

	require.NoError(t, c.Add(AttributesFile))
	require.NoError(t, c.Commit(attributesCommitMsg))
	require.Len(t, git.calls, 2)
	assert.Equal(t, "add .gitattributes", git.calls[0])
	assert.Equal(t, "commit -m "+attributesCommitMsg, git.calls[1])
}

func TestMigrateImportArguments(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{}}
	c := &LFSClient{git: git}

	err := c.MigrateImport([]string{"*.mp4", "tools/payload"}, 5*1024*1024)
	require.NoError(t, err)
	require.Len(t, git.calls, 1)
	assert.Equal(t,
		"lfs migrate import --everything --yes --include=*.mp4,tools/payload --above=5242880b",
		git.calls[0])
}

func TestMigrateImportWithoutThreshold(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{}}
	c := &LFSClient{git: git}

	require.NoError(t, c.MigrateImport([]string{"*.zip"}, 0))
	assert.Equal(t, "lfs migrate import --everything --yes --include=*.zip", git.calls[0])
}

func TestExternalToolFailurePropagates(t *testing.T) {
	boom := wrapExternal("git lfs track *.psd", "lfs: command failed", fmt.Errorf("exit status 2"))
	git := &fakeGit{errs: map[string]error{
		"lfs track *.psd": boom,
	}}
	c := &LFSClient{git: git}

	err := c.Track("*.psd")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExternalTool)
	assert.Contains(t, err.Error(), "lfs: command failed")
}

func TestIsInstalled(t *testing.T) {
	c := &LFSClient{git: &fakeGit{outputs: map[string]string{
		"lfs version": "git-lfs/3.0.2 (GitHub; linux amd64; go 1.17.2)\n",
	}}}
	assert.True(t, c.IsInstalled())

	c = &LFSClient{git: &fakeGit{errs: map[string]error{
		"lfs version": fmt.Errorf("unknown command"),
	}}}
	assert.False(t, c.IsInstalled())
}

func TestPushOrder(t *testing.T) {
	git := &fakeGit{outputs: map[string]string{}}
	c := &LFSClient{git: git}

	require.NoError(t, c.Push(context.Background(), "origin", "main"))
	require.Len(t, git.calls, 2)
	assert.Equal(t, "lfs push --all origin", git.calls[0], "LFS payloads go first")
	assert.Equal(t, "push --force origin main", git.calls[1])
}

func TestPushRetriesIdempotently(t *testing.T) {
	git := &failNTimesGit{failures: 2}
	c := &LFSClient{git: git}

	require.NoError(t, c.PushObjects(context.Background(), "origin"))
	assert.Equal(t, 3, git.calls)
}

// failNTimesGit fails its first N invocations, then succeeds.
type failNTimesGit struct {
	failures int
	calls    int
}

func (f *failNTimesGit) gitOutput(args ...string) (string, error) {
	return f.gitOutputContext(context.Background(), args...)
}

func (f *failNTimesGit) gitOutputContext(_ context.Context, args ...string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", wrapExternal("git "+args[0], "remote hung up", fmt.Errorf("exit status 1"))
	}
	return "", nil
}
