package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// SimpleUI implements UI with plain tables written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTargets prints one row per target.
func (s *SimpleUI) DisplayTargets(source m.Path, targets m.Targets) error {
	if len(targets) == 0 {
		s.printf("No targets found in %s\n", source)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Target", "Default", "Output"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, target := range targets {
		isDefault := ""
		if target.Default {
			isDefault = "*"
		}

		table.Append([]string{target.Name, isDefault, outputSummary(target)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(targets)), "", ""})

	table.Render()
	s.printf("%s\n%s", source, tableBuffer.String())

	return nil
}

// DisplayScan prints one row per Makefile.
func (s *SimpleUI) DisplayScan(makefiles []m.Makefile) error {
	if len(makefiles) == 0 {
		s.printf("No Makefiles found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Path", "Targets", "Default", "Hash"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, makefile := range makefiles {
		table.Append([]string{
			string(makefile.Path),
			strconv.Itoa(len(makefile.Targets)),
			defaultName(makefile.Targets),
			shortHash(makefile.Hash),
		})

		total += len(makefile.Targets)
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(makefiles)), strconv.Itoa(total), "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
