package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/forumstats"
	"github.com/fwojciec/forumstats/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestSource_List(t *testing.T) {
	t.Parallel()

	t.Run("orders pages numerically and skips non-page entries", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "page_0010.html", "<html>zehn</html>")
		writeFile(t, dir, "page_0002.html", "<html>zwei</html>")
		writeFile(t, dir, "page_0001.html", "<html>eins</html>")
		writeFile(t, dir, "notes.txt", "keine Seite")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "page_9999.html.d"), 0755))

		refs, err := fs.NewSource(dir).List()

		require.NoError(t, err)
		require.Len(t, refs, 3)
		assert.Equal(t, 1, refs[0].PageNum)
		assert.Equal(t, 2, refs[1].PageNum)
		assert.Equal(t, 10, refs[2].PageNum)
		assert.Equal(t, "page_0001.html", refs[0].Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource("/does/not/exist").List()

		require.Error(t, err)
		assert.Equal(t, forumstats.ENOTFOUND, forumstats.ErrorCode(err))
	})
}

func TestSource_Read(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "page_0001.html", "<html>Inhalt</html>")

	source := fs.NewSource(dir)

	content, err := source.Read(forumstats.PageRef{PageNum: 1, Name: "page_0001.html"})

	require.NoError(t, err)
	assert.Equal(t, "<html>Inhalt</html>", content)

	_, err = source.Read(forumstats.PageRef{PageNum: 2, Name: "page_0002.html"})

	assert.Equal(t, forumstats.ENOTFOUND, forumstats.ErrorCode(err))
}
