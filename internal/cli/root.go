// Package cli implements the amputil command tree.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by every subcommand.
type app struct {
	debug bool
	log   *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	cmd := &cobra.Command{
		Use:          "amputil",
		Short:        "String, query-string, config and HTML helpers",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			a.setupLogger(c.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log debug details to stderr")

	cmd.AddCommand(
		a.slugCmd(),
		a.titleCmd(),
		a.trimSlashesCmd(),
		a.qsCmd(),
		a.sortCmd(),
		a.uniqueCmd(),
		a.mergeCmd(),
		a.getCmd(),
		a.closestCmd(),
	)
	return cmd
}

func (a *app) setupLogger(w io.Writer) {
	a.log.SetOutput(w)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(logrus.WarnLevel)
	if a.debug {
		a.log.SetLevel(logrus.DebugLevel)
	}
}
