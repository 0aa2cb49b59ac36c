package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePatterns(t *testing.T) {
	tests := []struct {
		name   string
		record ObjectRecord
		want   []string
	}{
		{
			name:   "extension in subdirectory",
			record: ObjectRecord{path: "assets/video/intro.mp4", size: 12_000_000},
			want:   []string{"*.mp4", "assets/video/*.mp4"},
		},
		{
			name:   "no extension keeps literal path only",
			record: ObjectRecord{path: "tools/payload", size: 50_000_000},
			want:   []string{"tools/payload"},
		},
		{
			name:   "extension at repo root",
			record: ObjectRecord{path: "big.zip", size: 6_000_000},
			want:   []string{"*.zip"},
		},
		{
			name:   "no extension at repo root",
			record: ObjectRecord{path: "payload", size: 6_000_000},
			want:   []string{"payload"},
		},
		{
			name:   "multiple extensions use only the final one",
			record: ObjectRecord{path: "dist/archive.tar.gz", size: 9_000_000},
			want:   []string{"*.gz", "dist/*.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derivePatterns(ScanResult{tt.record})
			assert.ElementsMatch(t, tt.want, sortedPatterns(got))
		})
	}
}

func TestDerivePatternsDeduplicates(t *testing.T) {
	result := ScanResult{
		{path: "assets/a.mp4", size: 10},
		{path: "assets/b.mp4", size: 20},
		{path: "c.mp4", size: 30},
	}
	got := sortedPatterns(derivePatterns(result))
	assert.Equal(t, []string{"*.mp4", "assets/*.mp4"}, got)
}

func TestMergeAttributesAppendsSortedDelta(t *testing.T) {
	attrPath := filepath.Join(t.TempDir(), ".gitattributes")
	existing := "*.mp4 filter=lfs diff=lfs merge=lfs -text\n"
	require.NoError(t, os.WriteFile(attrPath, []byte(existing), 0644))

	appended, err := mergeAttributes(attrPath, derivePatterns(ScanResult{
		{path: "a.mp4", size: 1},
		{path: "b.zip", size: 2},
		{path: "a.avi", size: 3},
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"*.avi", "*.zip"}, appended)

	content, err := os.ReadFile(attrPath)
	require.NoError(t, err)
	assert.Equal(t, existing+
		"*.avi filter=lfs diff=lfs merge=lfs -text\n"+
		"*.zip filter=lfs diff=lfs merge=lfs -text\n",
		string(content))
}

func TestMergeAttributesIdempotent(t *testing.T) {
	attrPath := filepath.Join(t.TempDir(), ".gitattributes")
	candidates := derivePatterns(ScanResult{{path: "assets/video/intro.mp4", size: 1}})

	first, err := mergeAttributes(attrPath, candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.mp4", "assets/video/*.mp4"}, first)

	before, err := os.ReadFile(attrPath)
	require.NoError(t, err)

	second, err := mergeAttributes(attrPath, candidates)
	require.NoError(t, err)
	assert.Empty(t, second)

	after, err := os.ReadFile(attrPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "second run must not change the file")
}

func TestMergeAttributesMissingTrailingNewline(t *testing.T) {
	attrPath := filepath.Join(t.TempDir(), ".gitattributes")
	require.NoError(t, os.WriteFile(attrPath, []byte("*.psd filter=lfs diff=lfs merge=lfs -text"), 0644))

	appended, err := mergeAttributes(attrPath, derivePatterns(ScanResult{{path: "a.zip", size: 1}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"*.zip"}, appended)

	content, err := os.ReadFile(attrPath)
	require.NoError(t, err)
	assert.Equal(t,
		"*.psd filter=lfs diff=lfs merge=lfs -text\n"+
			"*.zip filter=lfs diff=lfs merge=lfs -text\n",
		string(content))
}

func TestMergeAttributesCreatesFile(t *testing.T) {
	attrPath := filepath.Join(t.TempDir(), ".gitattributes")

	appended, err := mergeAttributes(attrPath, derivePatterns(ScanResult{{path: "tools/payload", size: 1}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"tools/payload"}, appended)

	content, err := os.ReadFile(attrPath)
	require.NoError(t, err)
	assert.Equal(t, "tools/payload filter=lfs diff=lfs merge=lfs -text\n", string(content))
}

func TestMergeAttributesPreservesForeignLines(t *testing.T) {
	attrPath := filepath.Join(t.TempDir(), ".gitattributes")
	existing := "# managed by hand\n*.go text eol=lf\n"
	require.NoError(t, os.WriteFile(attrPath, []byte(existing), 0644))

	_, err := mergeAttributes(attrPath, derivePatterns(ScanResult{{path: "a.bin", size: 1}}))
	require.NoError(t, err)

	content, err := os.ReadFile(attrPath)
	require.NoError(t, err)
	assert.Equal(t, existing+"*.bin filter=lfs diff=lfs merge=lfs -text\n", string(content))
}

func TestMergeAttributesWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory at the attributes path forces the open to fail
	attrPath := filepath.Join(dir, ".gitattributes")
	require.NoError(t, os.Mkdir(attrPath, 0755))

	_, err := mergeAttributes(attrPath, derivePatterns(ScanResult{{path: "a.bin", size: 1}}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttributesWrite)
}
