package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/markup"
	"github.com/arthur-debert/inkwell/pkg/style"
	"github.com/arthur-debert/inkwell/pkg/theme"
)

func TestParseXML(t *testing.T) {
	th, err := theme.FromSpecs(map[string]string{
		"title":  "bold",
		"status": "green",
	})
	require.NoError(t, err)

	t.Run("styled tags", func(t *testing.T) {
		runs, err := markup.ParseXML("<title>Hi</title> &amp; <status>ok</status>", th, false)
		require.NoError(t, err)
		assert.Equal(t, []markup.Run{
			run("Hi", "bold"), run(" & ", ""), run("ok", "green"),
		}, runs)
	})

	t.Run("nested tags combine", func(t *testing.T) {
		runs, err := markup.ParseXML("<title>a<status>b</status></title>", th, false)
		require.NoError(t, err)
		assert.Equal(t, []markup.Run{run("a", "bold"), run("b", "bold green")}, runs)
	})

	t.Run("style words work as tags", func(t *testing.T) {
		runs, err := markup.ParseXML("<italic>x</italic>", nil, false)
		require.NoError(t, err)
		assert.Equal(t, []markup.Run{run("x", "italic")}, runs)
	})

	t.Run("unknown tags keep text unstyled", func(t *testing.T) {
		runs, err := markup.ParseXML("<whatever>x</whatever>", th, false)
		require.NoError(t, err)
		assert.Equal(t, []markup.Run{{Text: "x", Style: style.Null}}, runs)
	})

	t.Run("no-format is dropped for styled output", func(t *testing.T) {
		runs, err := markup.ParseXML("<status>done</status><no-format> ✓</no-format>", th, false)
		require.NoError(t, err)
		assert.Equal(t, "done", markup.PlainText(runs))
	})

	t.Run("no-format is kept for plain output", func(t *testing.T) {
		runs, err := markup.ParseXML("<status>done</status><no-format> ✓</no-format>", th, true)
		require.NoError(t, err)
		assert.Equal(t, []markup.Run{{Text: "done"}, {Text: " ✓"}}, runs)
	})

	t.Run("invalid xml", func(t *testing.T) {
		_, err := markup.ParseXML("<title>oops", th, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrXMLParse))
	})
}
