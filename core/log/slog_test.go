package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func removeTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}

func TestUserData(t *testing.T) {
	var b bytes.Buffer

	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{ReplaceAttr: removeTime}))

	l.Info("(Objfile) Fetched object", UserData("bucket", "my bucket"), "bytes", 3)
	l.Info("(Objfile) Stored object", "key", UserDataValue("path/to/key.txt"))

	require.Equal(t, `level=INFO msg="(Objfile) Fetched object" bucket="<ud>my bucket</ud>" bytes=3
level=INFO msg="(Objfile) Stored object" key=<ud>path/to/key.txt</ud>
`, b.String())
}

func TestParseLevel(t *testing.T) {
	type test struct {
		name     string
		input    string
		expected slog.Level
		err      bool
	}

	tests := []*test{
		{name: "Empty", input: "", expected: slog.LevelInfo},
		{name: "Trace", input: "trace", expected: LevelTrace},
		{name: "Debug", input: "DEBUG", expected: slog.LevelDebug},
		{name: "Info", input: " info ", expected: slog.LevelInfo},
		{name: "Warn", input: "warn", expected: slog.LevelWarn},
		{name: "Warning", input: "warning", expected: slog.LevelWarn},
		{name: "Error", input: "error", expected: slog.LevelError},
		{name: "Unknown", input: "verbose", err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, level)
		})
	}
}
