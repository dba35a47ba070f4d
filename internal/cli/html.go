package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/hasbyte1/go-amp-utils/dom"
)

func (a *app) closestCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "closest START ANCESTOR",
		Short: "Print the nearest ancestor of an element matching a selector",
		Long: "Parse an HTML document, find the first element matching START and print " +
			"the nearest ancestor matching ANCESTOR. The start element itself is not considered.",
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			var r io.Reader = c.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			doc, err := html.Parse(r)
			if err != nil {
				return fmt.Errorf("parse html: %w", err)
			}

			start, err := dom.QuerySelector(doc, args[0])
			if err != nil {
				return err
			}
			if start == nil {
				return fmt.Errorf("no element matches %q", args[0])
			}
			a.log.WithField("start", start.HTML().Data).Debug("found start element")

			found, err := dom.Closest(start, args[1])
			if err != nil {
				return err
			}
			if found == nil {
				return fmt.Errorf("no ancestor matches %q", args[1])
			}
			return renderShallow(c.OutOrStdout(), found.(*dom.Node).HTML())
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "HTML file to read (default stdin)")
	return cmd
}

// renderShallow writes n without its children, such as
// <form id="login"></form>.
func renderShallow(w io.Writer, n *html.Node) error {
	shallow := &html.Node{Type: n.Type, DataAtom: n.DataAtom, Data: n.Data, Namespace: n.Namespace, Attr: n.Attr}
	if err := html.Render(w, shallow); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
