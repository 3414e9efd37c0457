package cli

import (
	"bytes"

	"github.com/lyraproj/confres/confres"
)

// ExecuteLocate performs a location attempt using the CLI. It's primarily intended for
// testing purposes
func ExecuteLocate(args ...string) (output []byte, err error) {
	cmdOpts = confres.CommandOptions{}
	logLevel = ``
	settingsPath = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
