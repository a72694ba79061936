package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fondo/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the manual for a topic" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString(`fdo topic [<topic> ...]

Show the manual pages for the given topics, or the index when none is given.
Use '*' for every topic at once.
`)
	if topics, err := docs.GetAllTopics(); err == nil && len(topics) > 0 {
		fmt.Fprintf(&b, "\nAvailable topics: %s.\n", strings.Join(topics, ", "))
	}
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read topic: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
