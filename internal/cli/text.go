package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-amp-utils/arr"
	"github.com/hasbyte1/go-amp-utils/natsort"
	"github.com/hasbyte1/go-amp-utils/str"
)

func (a *app) slugCmd() *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "slug TEXT...",
		Short: "Convert text to a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			slug := str.Slug(text)
			if fold {
				slug = str.SlugFold(text)
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), slug)
			return err
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "strip accents instead of dropping accented letters")
	return cmd
}

func (a *app) titleCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "title TEXT...",
		Short: "Capitalize every word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tag, err := parseTag(lang)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), str.NewCaser(tag).TitleCase(strings.Join(args, " ")))
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "und", "BCP 47 language tag for casing rules")
	return cmd
}

func (a *app) trimSlashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim-slashes PATH",
		Short: "Remove one leading and one trailing slash",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), str.TrimSlashes(args[0]))
			return err
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "sort [LINE...]",
		Short: "Sort lines in natural order",
		Long:  "Sort the given arguments, or the lines of stdin when there are none, so that embedded numbers compare by value.",
		RunE: func(c *cobra.Command, args []string) error {
			tag, err := parseTag(lang)
			if err != nil {
				return err
			}
			lines, err := linesOf(c, args)
			if err != nil {
				return err
			}
			natsort.New(tag).Sort(lines)
			return writeLines(c.OutOrStdout(), lines)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "und", "BCP 47 language tag for collation")
	return cmd
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique [LINE...]",
		Short: "Drop repeated lines, keeping first occurrences",
		RunE: func(c *cobra.Command, args []string) error {
			lines, err := linesOf(c, args)
			if err != nil {
				return err
			}
			out := arr.Unique(lines)
			a.log.WithField("dropped", len(lines)-len(out)).Debug("removed duplicates")
			return writeLines(c.OutOrStdout(), out)
		},
	}
}

func parseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tag, nil
}

// linesOf returns args, or the lines of stdin when args is empty.
func linesOf(c *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(c.InOrStdin())
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
