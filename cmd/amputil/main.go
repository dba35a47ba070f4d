// Command amputil exposes the string, query-string, sorting, config-merge
// and HTML helpers of this module on the command line.
package main

import "github.com/hasbyte1/go-amp-utils/internal/cli"

func main() {
	cli.Execute()
}
