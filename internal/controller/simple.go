package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mutavec.dev/pkg/mutavec/internal/domain"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMutations renders the generated mutations as a table.
func (s *SimpleUI) DisplayMutations(ctx context.Context, mutations []m.Vector) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderMutationTable(mutations))

	return nil
}

func renderMutationTable(mutations []m.Vector) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Affected Input", "Value", "Format", "Method", "Target"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for i, mutation := range mutations {
		desc := mutation.Describe()

		table.Append([]string{
			strconv.Itoa(i + 1),
			desc["affected_input"],
			printable(desc["affected_value"]),
			mutation.Format().String(),
			desc["method"],
			desc["target"],
		})
	}

	table.SetFooter([]string{"", "", "", "", "Total", strconv.Itoa(len(mutations))})
	table.Render()

	return buf.String()
}

// DisplayFormats renders the format combinations and their sample injections.
func (s *SimpleUI) DisplayFormats(ctx context.Context, formats []m.Format, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Format", "Sample Injection"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, format := range formats {
		sample := domain.BuildInjection(payload, "<default>", format)
		table.Append([]string{format.String(), printable(sample)})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplaySummary prints the closing totals line.
func (s *SimpleUI) DisplaySummary(ctx context.Context, mutations, payloads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generated %d mutation(s) from %d payload(s)\n", mutations, payloads)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// printable makes NUL bytes and newlines visible in table cells.
func printable(value string) string {
	value = strings.ReplaceAll(value, "\x00", `\0`)
	value = strings.ReplaceAll(value, "\r", `\r`)
	value = strings.ReplaceAll(value, "\n", `\n`)

	return value
}
