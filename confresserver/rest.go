package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/confres/confres"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Println(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel string
	cmdOpts  confres.CommandOptions
	port     int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "server",
		Short:  `Server - Start a configuration resource locator REST server`,
		Long:   "Server - Start a REST server that finds the address of named configuration resources.\n  Find more information at: https://github.com/lyraproj/confres",
		PreRun: initialize,
		Run:    startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug`)
	flags.StringVar(&cmdOpts.Base, `base`, ``, `directory or URL that relative names are resolved against`)
	flags.StringVar(&cmdOpts.Home, `home`, ``, `directory to use instead of the user home directory`)
	flags.StringArrayVar(&cmdOpts.Roots, `root`, nil, `directory that logical names are resolved against`)
	flags.IntVar(&port, `port`, 80, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `locate`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) {
	e := echo.New()
	e.Logger.SetOutput(cmd.OutOrStdout())

	doLocate := func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if er, ok := r.(error); ok {
					err = c.JSON(http.StatusBadRequest, map[string]string{`message`: er.Error()})
				} else {
					panic(r)
				}
			}
		}()

		opts := cmdOpts
		name := c.Param(`name`)
		params := c.QueryParams()
		if base := params.Get(`base`); base != `` {
			opts.Base = base
		}
		opts.RenderAs = `json`
		out := bytes.Buffer{}
		if confres.LocateAndRender(&opts, []string{name}, &out) {
			err = c.Stream(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, bytes.NewBuffer(out.Bytes()))
		} else {
			err = c.NoContent(http.StatusNotFound)
		}
		return
	}

	e.GET("/locate/:name", doLocate)
	e.Logger.Fatal(e.Start(`:` + strconv.Itoa(port)))
}
