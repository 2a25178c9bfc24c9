package objfile

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objval"
)

var testLines = [][]byte{[]byte("first line\n"), []byte("\n"), []byte("second line\n"), []byte("third line\n")}

func newLinesTestFile(t *testing.T, lines [][]byte) (*File, *objcli.TestClient) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)
	objcli.TestUploadRAW(t, client, "bucket", "key.txt", bytes.Join(lines, nil))

	return newTestFile(t, client), client
}

func TestReadLines(t *testing.T) {
	file, _ := newLinesTestFile(t, testLines)

	lines, err := file.ReadLines()
	require.NoError(t, err)
	require.Len(t, lines, len(testLines))
	require.Equal(t, bytes.Join(testLines, nil), bytes.Join(lines, nil))

	lines, err = file.ReadLines()
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestReadLinesFromCursor(t *testing.T) {
	file, _ := newLinesTestFile(t, testLines)

	line, err := file.ReadLine()
	require.NoError(t, err)
	require.Equal(t, testLines[0], line)

	lines, err := file.ReadLines()
	require.NoError(t, err)
	require.Equal(t, testLines[1:], lines)
}

func TestReadLine(t *testing.T) {
	file, _ := newLinesTestFile(t, [][]byte{[]byte("line\n"), []byte("no terminator")})

	line, err := file.ReadLine()
	require.NoError(t, err)
	require.Equal(t, []byte("line\n"), line)

	line, err = file.ReadLine()
	require.NoError(t, err)
	require.Equal(t, []byte("no terminator"), line)

	_, err = file.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLineN(t *testing.T) {
	file, _ := newLinesTestFile(t, testLines)

	line, err := file.ReadLineN(5)
	require.NoError(t, err)
	require.Equal(t, []byte("first"), line)

	line, err = file.ReadLineN(-1)
	require.NoError(t, err)
	require.Equal(t, []byte(" line\n"), line)

	line, err = file.ReadLineN(0)
	require.NoError(t, err)
	require.Empty(t, line)
}

func TestLines(t *testing.T) {
	file, client := newLinesTestFile(t, testLines)

	var lines [][]byte

	for line, err := range file.Lines() {
		require.NoError(t, err)
		lines = append(lines, line)
	}

	require.Equal(t, testLines, lines)
	require.Equal(t, 1, client.Calls(objcli.OpGetObject))

	for range file.Lines() {
		require.Fail(t, "expected the iterator not to restart")
	}
}

func TestLinesAdvancesCursor(t *testing.T) {
	file, _ := newLinesTestFile(t, testLines)

	for line, err := range file.Lines() {
		require.NoError(t, err)
		require.Equal(t, testLines[0], line)

		break
	}

	require.Equal(t, int64(len(testLines[0])), file.Tell())

	line, err := file.ReadLine()
	require.NoError(t, err)
	require.Equal(t, testLines[1], line)
}

func TestLinesClosedMidIteration(t *testing.T) {
	file, _ := newLinesTestFile(t, testLines)

	var errs []error

	for _, err := range file.Lines() {
		if err != nil {
			errs = append(errs, err)
			continue
		}

		require.NoError(t, file.Close())
	}

	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrClosed)
}

func TestLinesFetchFailure(t *testing.T) {
	file, client := newLinesTestFile(t, testLines)
	client.FailNext(objcli.OpGetObject, io.ErrUnexpectedEOF)

	var count int

	for line, err := range file.Lines() {
		count++

		require.Nil(t, line)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	}

	require.Equal(t, 1, count)
}
