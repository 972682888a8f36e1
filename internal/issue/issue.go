// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

// Issue ids. The zero value is never a valid id.
const (
	JazzyNotFoundId Id = iota + 1
	SwiftNotFoundId
	ConfigLoadFailedId
	ReportGenerationFailedId
	JazzyConfigNotFoundId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a catalog entry with Markdown guidance for one failure class.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the full Markdown text including the "See also" links.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			sb.WriteString("- [" + string(link) + "](" + string(link) + ")\n")
		}
		for _, link := range i.extLinks {
			sb.WriteString("- [" + string(link) + "](" + string(link) + ")\n")
		}
	}
	return sb.String()
}

// Render renders the issue for the terminal using the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	jazzyNotFoundIssue = &Issue{
		id: JazzyNotFoundId,
		mdMsg: `
# jazzy not found!

doclint runs jazzy to compute documentation coverage, but the binary could not
be found in your PATH.

## Things you can try:
- Install jazzy:
~~~
$ gem install jazzy
~~~
- Point doclint at a specific binary in your config file:
~~~cue
jazzy_binary: "/usr/local/bin/jazzy"
~~~`,
		extLinks: []HttpLink{"http://github.com/realm/jazzy"},
	}

	swiftNotFoundIssue = &Issue{
		id: SwiftNotFoundId,
		mdMsg: `
# swift version unavailable

doclint could not determine the Swift compiler version. jazzy will run without
a ` + "`--swift-version`" + ` hint, which is usually fine.

## Things you can try:
- Check that ` + "`swift --version`" + ` works in your shell
- Point doclint at a specific binary:
~~~cue
swift_binary: "/usr/bin/swift"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The doclint configuration file could not be loaded or is invalid.

## Things you can try:
- Check the CUE syntax of your config file
- Regenerate a default configuration:
~~~
$ doclint config init
~~~
- Show the effective configuration:
~~~
$ doclint config show
~~~`,
	}

	reportGenerationFailedIssue = &Issue{
		id: ReportGenerationFailedId,
		mdMsg: `
# jazzy did not produce a coverage report

jazzy exited with an error, timed out, or wrote an empty or unreadable
` + "`undocumented.json`" + `. Files under that configuration are reported
with no diagnostics.

## Things you can try:
- Run jazzy by hand from the directory holding your ` + "`.jazzy.yaml`" + `:
~~~
$ jazzy --skip-documentation --output=/tmp/jazzy-out
~~~
- Re-run doclint with ` + "`--verbose`" + ` to see the exact command line
- Raise the timeout for large modules:
~~~cue
timeout: "10m"
~~~`,
	}

	jazzyConfigNotFoundIssue = &Issue{
		id: JazzyConfigNotFoundId,
		mdMsg: `
# No .jazzy.yaml found

Documentation linting only applies to files that live below a directory
containing ` + "`.jazzy.yaml`" + ` or ` + "`.jazzy.yml`" + `. The nearest one wins.

## Things you can try:
- Add a ` + "`.jazzy.yaml`" + ` next to your sources or in a parent directory
- Check that ` + "`--root`" + ` points at your project root`,
		extLinks: []HttpLink{"http://github.com/realm/jazzy#configuration"},
	}

	issues = map[Id]*Issue{
		jazzyNotFoundIssue.Id():          jazzyNotFoundIssue,
		swiftNotFoundIssue.Id():          swiftNotFoundIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		reportGenerationFailedIssue.Id(): reportGenerationFailedIssue,
		jazzyConfigNotFoundIssue.Id():    jazzyConfigNotFoundIssue,
	}
)

// Values returns all catalog entries ordered by id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	values := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		values = append(values, issues[id])
	}
	return values
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
