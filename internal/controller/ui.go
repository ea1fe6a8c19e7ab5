// Package controller provides output adapters for displaying generated
// mutations.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

// UI defines the interface for displaying generation results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayMutations renders the generated mutations in emission order.
	DisplayMutations(ctx context.Context, mutations []m.Vector) error
	// DisplayFormats renders the known format combinations and what each
	// produces for the sample payload.
	DisplayFormats(ctx context.Context, formats []m.Format, payload string) error
	// DisplaySummary prints the closing totals line.
	DisplaySummary(ctx context.Context, mutations, payloads int)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the interactive TUI when requested and the terminal allows
// it, falling back to plain output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive && IsTTY(os.Stdout) {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}
