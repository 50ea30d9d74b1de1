package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type executor struct {
	t      *testing.T
	dir    string
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newExecutor(t *testing.T) *executor {
	e := &executor{
		t:      t,
		dir:    t.TempDir(),
		out:    new(bytes.Buffer),
		errOut: new(bytes.Buffer),
	}
	e.write("words.tsv", "foo\t1\nbaar\t2\nbaarhus\t3\nbazar\t4\nhus\t5\n")
	e.write("text.txt", "The fool baal baarhus in the bazar!")
	return e
}

func (e *executor) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *executor) write(name, data string) {
	require.NoError(e.t, os.WriteFile(e.path(name), []byte(data), 0644))
}

func (e *executor) run(args ...string) error {
	e.out.Reset()
	e.errOut.Reset()

	ctl := newApp()
	ctl.Writer = e.out
	ctl.ErrWriter = e.errOut
	return ctl.Run(append([]string{"patscan"}, args...))
}

func TestScanCommand(t *testing.T) {
	e := newExecutor(t)

	require.NoError(t, e.run("scan", "-d", e.path("words.tsv"), e.path("text.txt")))
	require.Equal(t, "4\tfoo\t1\n14\tbaarhus\t3\n29\tbazar\t4\n", e.out.String())
	require.Contains(t, e.errOut.String(), "dictionary loaded")

	require.NoError(t, e.run("scan", "--all", "-d", e.path("words.tsv"), e.path("text.txt")))
	require.Equal(t, "4\tfoo\t1\n14\tbaar\t2\n14\tbaarhus\t3\n29\tbazar\t4\n", e.out.String())

	require.NoError(t, e.run("scan", "--count", "--overlap", "-d", e.path("words.tsv"), e.path("text.txt")))
	require.Equal(t, "baarhus\t1\nbazar\t1\nfoo\t1\nhus\t1\n", e.out.String())
}

func TestScanCommandConfig(t *testing.T) {
	e := newExecutor(t)
	e.write("patscan.yml", "dictionary: "+e.path("words.tsv")+"\nlog_level: debug\nscan:\n  longest_only: false\n")

	require.NoError(t, e.run("scan", "-c", e.path("patscan.yml"), e.path("text.txt"), e.path("text.txt")))
	require.Contains(t, e.out.String(), e.path("text.txt")+":14\tbaar\t2\n")
	require.Contains(t, e.errOut.String(), "scan done")
}

func TestScanCommandErrors(t *testing.T) {
	e := newExecutor(t)

	require.ErrorContains(t, e.run("scan", e.path("text.txt")), "no dictionary given")
	require.Empty(t, e.errOut.String())
	require.Error(t, e.run("scan", "-d", e.path("missing.tsv"), e.path("text.txt")))
	require.Error(t, e.run("scan", "-d", e.path("words.tsv"), e.path("missing.txt")))

	e.write("bad.yml", "log_level: loud\n")
	require.ErrorContains(t, e.run("scan", "-c", e.path("bad.yml")), "log setting")
}

func TestPrefixCommand(t *testing.T) {
	e := newExecutor(t)

	require.NoError(t, e.run("prefix", "-d", e.path("words.tsv"), "ba", "zz"))
	require.Equal(t, "baar\t2\nbaarhus\t3\nbazar\t4\n", e.out.String())
	require.Contains(t, e.errOut.String(), "no entries")

	require.ErrorContains(t, e.run("prefix", "-d", e.path("words.tsv")), "no prefix given")
}
