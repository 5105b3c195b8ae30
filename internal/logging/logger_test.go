package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type failingWriter struct {
	err error
}

func (w failingWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(""))
	assert.Equal(t, logrus.WarnLevel, GetLevel("loud"))
}

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	errA := errors.New("disk full")
	errB := errors.New("closed")

	cw := NewCombinedWriter(&a, failingWriter{errA}, &b, failingWriter{errB})
	n, err := cw.Write([]byte("hello"))

	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
	require.Error(t, err)
	assert.ElementsMatch(t, []error{errA, errB}, multierr.Errors(err))
}

func TestSetup_LogFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	path := filepath.Join(t.TempDir(), "gymtrack")
	Setup(LoggerSetupParams{
		LogFileName:   path,
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	logrus.Info("workout logged")
	logrus.Debug("not written")

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"workout logged"`)
	assert.NotContains(t, string(data), "not written")
}
