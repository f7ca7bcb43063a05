package cli

import (
	"os"
	"testing"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	os.Args = []string{""}
	flags, err := Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, Flags{LogLevel: logrus.InfoLevel}, flags, "should return defaults")

	os.Args = []string{"", "--help"}
	_, err = Parse()
	assert.True(t, IsErrOfType(err, goFlags.ErrHelp), "should return help error")

	os.Args = []string{"", "--version"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.True(t, flags.Version, "flag should be specified")

	os.Args = []string{"", "--logLevel=-1"}
	_, err = Parse()
	assert.Error(t, err, "should return error for negative log level")
	assert.True(t, IsErrOfType(err, goFlags.ErrMarshal), "should return marshal error")

	os.Args = []string{"", "--logLevel=5"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, logrus.DebugLevel, flags.LogLevel, "flag should have this value")

	os.Args = []string{"", "-s", "-l", "2"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.True(t, flags.Summary, "flag should be specified")
	assert.Exactly(t, logrus.ErrorLevel, flags.LogLevel, "flag should have this value")

	os.Args = []string{"", "--unknown"}
	_, err = Parse()
	assert.True(t, IsErrOfType(err, goFlags.ErrUnknownFlag), "should return unknown flag error")
}

func TestIsErrOfType(t *testing.T) {
	assert.True(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrUnknown))
	assert.False(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrHelp))
	assert.False(t, IsErrOfType(nil, goFlags.ErrHelp))
}
