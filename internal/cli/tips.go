package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"footprint/internal/footprint"
	"footprint/internal/tips"
)

// newTipsCmd creates the "tips" command: reduction tips for one category or
// for all categories in display order.
func newTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "tips [category]",
		Short:     "Show carbon reduction tips",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: footprint.Categories,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				categoryTips := tips.ForCategory(args[0])
				if categoryTips == nil {
					return fmt.Errorf("unknown category %q (expected one of %v)", args[0], footprint.Categories)
				}
				printTips(cmd, args[0], categoryTips)
				return nil
			}

			for _, category := range footprint.Categories {
				printTips(cmd, category, tips.ForCategory(category))
			}
			return nil
		},
	}
}

func printTips(cmd *cobra.Command, category string, lines []string) {
	cmd.Printf("%s:\n", category)
	for _, tip := range lines {
		cmd.Printf("  • %s\n", tip)
	}
	cmd.Println()
}
