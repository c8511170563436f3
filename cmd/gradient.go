package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro-cli/internal/adapters/tui"
	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/gradient"
)

var gradientLength int

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Preview the progress bar colors",
	Long: `Print sample gradients built from the configured work angles: the bounded
arc in both directions, a full hue cycle in both directions and a double cycle.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gradientLength < 1 {
			return fmt.Errorf("length must be at least 1, got %d", gradientLength)
		}

		out := cmd.OutOrStdout()
		styles := tui.NewStyles(lipgloss.NewRenderer(out))
		start, end := float64(app.config.Gradient.WorkStart), float64(app.config.Gradient.WorkEnd)

		for _, s := range gradient.Samples(start, end, gradientLength) {
			fmt.Fprintln(out, s.Label)
			fmt.Fprintln(out, styles.Swatch(s.Gradient, gradientLength))
		}
		return nil
	},
}

func init() {
	gradientCmd.Flags().IntVar(&gradientLength, "length", domain.CellCount, "Number of cells per sample")
}
