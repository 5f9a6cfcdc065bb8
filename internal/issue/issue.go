// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolNotFoundId Id = iota + 1
	ConfigLoadFailedId
	InvalidSpanId
	EmptyArgumentsId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# sq executable not found!

The external OpenPGP tool could not be started, so nothing was shown.

## Things you can try:
- Install Sequoia sq:
~~~
$ cargo install sequoia-sq
~~~
  or use your distribution's package (` + "`apt install sq`" + `, ` + "`brew install sq`" + `, ...)

- Check that the executable is on your PATH:
~~~
$ which sq
~~~

- Point at a different executable via the --tool flag or in your config file:
~~~toml
[tool]
path = "/opt/sequoia/bin/sq"
~~~`,
		extLinks: []HttpLink{"https://sequoia-pgp.org"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the sqview configuration file.

## Configuration file locations:
- Linux: ~/.config/sqview/config.toml
- macOS: ~/Library/Application Support/sqview/config.toml
- Windows: %APPDATA%\sqview\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ sqview config init
~~~

- Check the TOML syntax of the existing file
- Remove the config file to fall back to defaults`,
	}

	invalidSpanIssue = &Issue{
		id: InvalidSpanId,
		mdMsg: `
# Invalid selection span!

The --from/--to byte offsets do not describe a valid region of the input.

## Rules:
- offsets are byte offsets into the input, starting at 0
- --from must be <= --to
- --to must not be past the end of the input

## Example:
~~~
$ sqview dump --from 0 --to 512 message.pgp
~~~`,
	}

	emptyArgumentsIssue = &Issue{
		id: EmptyArgumentsId,
		mdMsg: `
# Nothing to run!

The free-form invocation was given an empty argument string, so there is no
subcommand to pass to sq.

## Example:
~~~
$ sqview run "armor --kind secret-key" key.pgp
~~~

Note that arguments are split strictly on whitespace; there is no quoting, so
an argument that itself contains a space cannot be expressed here.`,
	}

	issues = map[Id]*Issue{
		toolNotFoundIssue.Id():     toolNotFoundIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		invalidSpanIssue.Id():      invalidSpanIssue,
		emptyArgumentsIssue.Id():   emptyArgumentsIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
