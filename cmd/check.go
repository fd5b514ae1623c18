package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/kastheco/tablist"
	"github.com/kastheco/tablist/app"
	"github.com/kastheco/tablist/dom"
	"github.com/kastheco/tablist/log"
)

// LoadDocument parses the markup at path. An empty path yields the bundled
// sample. The second value names the source for display.
func LoadDocument(path string) (*dom.Document, string, error) {
	if path == "" {
		doc, err := dom.ParseString(app.SampleHTML)
		return doc, "sample", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open markup: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, filepath.Base(path), nil
}

// executeCheck mounts every tablist in doc, reports what it discovered and
// unmounts again. Exported for testing without cobra plumbing.
func executeCheck(doc *dom.Document, cfg tablist.Config) (string, error) {
	containers := doc.Root().ByRole(tablist.RoleTablist)
	if len(containers) == 0 {
		return "", &tablist.ConfigurationError{Reason: "no [role=tablist] element in markup"}
	}

	var b strings.Builder
	var errs []error
	for i, c := range containers {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := "tablist[" + strconv.Itoa(i) + "]"
		if id := c.ID(); id != "" {
			name = "#" + id
		}

		list := tablist.New(c, cfg)
		if err := list.Mount(); err != nil {
			log.WarningLog.Printf("check %s: %v", name, err)
			fmt.Fprintf(&b, "%s: %v\n", name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		items := list.Items()
		fmt.Fprintf(&b, "%s: %s, %d items\n", name, list.Mode(), len(items))
		b.WriteString(itemTable(list, items))
		b.WriteByte('\n')
		list.Unmount()
	}
	return b.String(), errors.Join(errs...)
}

// WriteCheck writes the report for every tablist in doc to w.
func WriteCheck(w io.Writer, doc *dom.Document, cfg tablist.Config) error {
	out, err := executeCheck(doc, cfg)
	fmt.Fprint(w, out)
	return err
}

func itemTable(list *tablist.Tablist, items []tablist.Item) string {
	t := table.New().Headers("#", "tab", "panel", "state")
	for _, it := range items {
		var state []string
		if it.Disabled {
			state = append(state, "disabled")
		}
		if list.Expanded(it.Index) {
			state = append(state, "open")
		}
		if v, _ := it.Header.Attr(tablist.AttrTabIndex); v == "0" {
			state = append(state, "tabindex=0")
		}
		t.Row(strconv.Itoa(it.Index), elementName(it.Header), elementName(it.Panel), strings.Join(state, " "))
	}
	return t.String()
}

func elementName(el tablist.Element) string {
	label := ""
	if n, ok := el.(*dom.Node); ok {
		label = ansi.Truncate(n.Text(), 24, "...")
	}
	switch {
	case el.ID() != "" && label != "":
		return fmt.Sprintf("#%s %q", el.ID(), label)
	case el.ID() != "":
		return "#" + el.ID()
	}
	return fmt.Sprintf("%q", label)
}

// NewCheckCmd returns the `tablist check` command.
func NewCheckCmd() *cobra.Command {
	var endLastIndex bool
	checkCmd := &cobra.Command{
		Use:   "check [file.html]",
		Short: "mount every tablist in the markup and print what was discovered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, _, err := LoadDocument(path)
			if err != nil {
				return err
			}
			cfg := tablist.Config{}
			if endLastIndex {
				cfg.End = tablist.EndLastIndex
			}
			return WriteCheck(cmd.OutOrStdout(), doc, cfg)
		},
	}
	checkCmd.Flags().BoolVar(&endLastIndex, "end-last-index", false, "report with End resolving to the last index")
	return checkCmd
}
