package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "nested", "paymaker.log")
	closer, err := Setup(path, "debug")
	require.NoError(t, err)

	logrus.WithField("index", 2).Debug("customize: remove check")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "customize: remove check")
	assert.Contains(t, string(data), "index=2")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_BadLevel(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "x.log"), "chatty")
	assert.Error(t, err)
}
