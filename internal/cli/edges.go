package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcluster/edges"
)

func newEdgesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "edges <file>",
		Short: "Print the cheapest edges of a point file",
		Long:  `Edges prints up to --limit edges in ascending weight order as "u v weight", where u and v are 0-based line indices of the parsed points.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d", limit)
			}

			pts, err := loadPoints(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			q := edges.Enumerate(pts).Queue()
			out := cmd.OutOrStdout()
			for i := 0; i < limit; i++ {
				e, ok := q.Pop()
				if !ok {
					break
				}
				fmt.Fprintf(out, "%d %d %.6f\n", e.U, e.V, e.Weight)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of edges to print")

	return cmd
}
