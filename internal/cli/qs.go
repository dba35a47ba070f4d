package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-amp-utils/querystring"
)

func (a *app) qsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "qs",
		Short: "Read or write query-string parameters",
	}

	c.AddCommand(a.qsGetCmd(), a.qsSetCmd())
	return c
}

func (a *app) qsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get URI KEY",
		Short: "Print the decoded value of a parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			uri, key := args[0], args[1]
			v, ok, err := querystring.Lookup(uri, key)
			if !ok {
				return fmt.Errorf("parameter %q not found", key)
			}
			if err != nil {
				a.log.WithError(err).Warn("printing raw value")
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), v)
			return err
		},
	}
}

func (a *app) qsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set URI KEY VALUE",
		Short: "Print URI with a parameter assigned",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), querystring.Set(args[0], args[1], args[2]))
			return err
		},
	}
}
