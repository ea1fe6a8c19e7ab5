package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"mutavec.dev/pkg/mutavec/internal/controller"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

var formatsPayloadFlag string

// formatsCmd represents the formats command.
var formatsCmd = newFormatsCmd()

func newFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the format combinations and their sample injections",
		Long: `Show every single format flag plus the default combination list, rendering
what each produces for a sample payload. The append source is shown as the
<default> placeholder.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ui := controller.NewSimpleUI(cmd)

			return ui.DisplayFormats(ctx, listedFormats(), formatsPayloadFlag)
		},
	}

	cmd.Flags().StringVarP(&formatsPayloadFlag, "payload", "p", "<payload>", "sample payload to render")

	return cmd
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

// listedFormats returns the four single flags followed by the default
// combinations that are not already singles.
func listedFormats() []m.Format {
	singles := []m.Format{
		m.FormatStraight,
		m.FormatAppend,
		m.FormatNullTerminate,
		m.FormatSemicolonPrefix,
	}

	out := make([]m.Format, 0, len(singles)+len(m.DefaultFormats))
	out = append(out, singles...)

	for _, format := range m.DefaultFormats {
		if !containsFormat(out, format) {
			out = append(out, format)
		}
	}

	return out
}

func containsFormat(formats []m.Format, format m.Format) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}

	return false
}
