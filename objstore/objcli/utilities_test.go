package objcli

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeekerLength(t *testing.T) {
	reader := bytes.NewReader([]byte("abcdefgh"))

	length, err := SeekerLength(reader)
	require.NoError(t, err)
	require.Equal(t, int64(8), length)

	_, err = reader.Seek(3, io.SeekStart)
	require.NoError(t, err)

	length, err = SeekerLength(reader)
	require.NoError(t, err)
	require.Equal(t, int64(5), length)

	cur, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(3), cur)
}

func TestCopyReadSeeker(t *testing.T) {
	reader := bytes.NewReader([]byte("abcdefgh"))

	_, err := reader.Seek(2, io.SeekStart)
	require.NoError(t, err)

	var buf bytes.Buffer

	n, err := CopyReadSeeker(&buf, reader)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "cdefgh", buf.String())

	cur, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(2), cur)
}
