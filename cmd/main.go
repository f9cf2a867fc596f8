// Package cmd implements the CLI application to classify portfolio
// screenshots and extractions.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all on a Commander and executes the
// user-selected one.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&classifyCmd{},
	&scanCmd{},
	&searchISINCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown for the terminal. On rendering errors the
// raw markdown is printed instead, it is still readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
