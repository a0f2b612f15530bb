package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd add --type box")
	require.True(t, ok)
	assert.Equal(t, []string{"add", "--type", "box"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello")
	assert.False(t, ok)
}

func TestExecuteResetsFlags(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("delete")
	row := fs.Int("row", -1, "row")
	var got []int
	r.Register("delete", "delete [--row N]", fs, func() error {
		got = append(got, *row)
		return nil
	})

	require.NoError(t, r.Execute([]string{"delete", "--row", "2"}))
	require.NoError(t, r.Execute([]string{"delete"}))
	assert.Equal(t, []int{2, -1}, got)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "fail", NewFlagSet("fail"), func() error { return boom })

	assert.Error(t, r.Execute(nil))
	assert.Error(t, r.Execute([]string{"nope"}))
	assert.Error(t, r.Execute([]string{"fail", "--bogus"}))
	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.Equal(t, []string{"fail: fail"}, r.Help())
}
