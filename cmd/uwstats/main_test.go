package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/forumstats/cmd/uwstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageFixture = `<!DOCTYPE html>
<html>
<body>
<article class="message" data-author="Alice">
	<ul><li>Teilen</li><li>Melden</li><li>4. März 2022</li><li>#1</li></ul>
	<time class="u-dt" datetime="2022-03-04T17:32:08+01:00">4. März 2022</time>
	<div class="message-content"><p>Das ist ein wirklich guter Beitrag.</p></div>
</article>
<article class="message" data-author="Bob">
	<ul><li>Teilen</li><li>Melden</li><li>4. März 2022</li><li>#2</li></ul>
	<time class="u-dt" datetime="2022-03-04T18:01:44+01:00">4. März 2022</time>
	<div class="message-content"><p>zu kurz</p></div>
</article>
</body>
</html>`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "page_0001.html"), []byte(pageFixture), 0o644)
	require.NoError(t, err)
	return dir
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("table end to end", func(t *testing.T) {
		t.Parallel()

		dir := writeFixture(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--path", dir, "table"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "[TABLE=full]")
		assert.Contains(t, output, "[TD]Alice[/TD][TD]1[/TD][TD]0[/TD][TD]0.0%[/TD]")
		assert.Contains(t, output, "[TD]Bob[/TD][TD]1[/TD][TD]1[/TD][TD]100.0%[/TD]")
	})

	t.Run("show end to end", func(t *testing.T) {
		t.Parallel()

		dir := writeFixture(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--path", dir, "show", "2"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "post #2 (page 1) by Bob")
		assert.Contains(t, output, "rules: broken (word_count, first_letter, punctuation)")
		assert.Contains(t, output, "zu kurz")
	})

	t.Run("malformed page range", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--pagerange", "oops", "table"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("missing page directory", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--path", filepath.Join(t.TempDir(), "nope"), "table"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
