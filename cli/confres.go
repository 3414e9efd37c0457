// Package cli contains the locate command used by the command line interface.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/dgo/util"
	"github.com/lyraproj/confres/confres"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

var (
	cmdOpts      confres.CommandOptions
	logLevel     string
	settingsPath string
)

// NewCommand creates the locate Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <name> [<name> ...]",
		Short: `Locate - Find the address of named configuration resources`,
		Long: `Locate - Find the address of named configuration resources.
    Find more information at: https://github.com/lyraproj/confres`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdLocate,
		Args:    cobra.MinimumNArgs(1)}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug`)
	flags.StringVar(&settingsPath, `settings`, ``,
		`path to a YAML settings file that provides defaults for the other flags`)
	flags.StringVar(&cmdOpts.Base, `base`, ``,
		`directory or URL that relative names are resolved against`)
	flags.StringVar(&cmdOpts.Home, `home`, ``,
		`directory to use instead of the user home directory`)
	flags.StringArrayVar(&cmdOpts.Roots, `root`, nil,
		`directory that logical names are resolved against when no file system step finds the resource`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml/binary: Specify the output format of the results; s means plain text`)
	flags.BoolVar(&cmdOpts.Explain, `explain`, false,
		`Explain the details of how each search step was performed and where the final address came from`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `locate`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdLocate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if settingsPath != `` {
		s, err := readSettings(settingsPath)
		if err != nil {
			return err
		}
		s.applyTo(&cmdOpts)
	}
	found := false
	err := util.Catch(func() {
		found = confres.LocateAndRender(&cmdOpts, args, cmd.OutOrStdout())
	})
	if err == nil && !found {
		err = fmt.Errorf(`no address found for %s`, args)
	}
	return err
}
