package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/landmarks"
)

var (
	landmarksCategory string
	landmarksLimit    int
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks [query]",
	Short: "Search the built-in landmark table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLandmarks,
}

func init() {
	landmarksCmd.Flags().StringVar(&landmarksCategory, "category", "", "only list landmarks of this category")
	landmarksCmd.Flags().IntVar(&landmarksLimit, "limit", 10, "maximum number of landmarks to print")
}

func runLandmarks(cmd *cobra.Command, args []string) error {
	catalog := landmarks.NewCatalog()

	var list []landmarks.Landmark
	switch {
	case len(args) == 1:
		list = catalog.Search(args[0])
	case landmarksCategory != "":
		category := landmarks.Category(strings.ToLower(landmarksCategory))
		if !category.Valid() {
			return fmt.Errorf("unknown category %q", landmarksCategory)
		}
		list = catalog.ByCategory(category)
	default:
		list = catalog.Random(landmarksLimit)
	}
	if landmarksLimit > 0 && len(list) > landmarksLimit {
		list = list[:landmarksLimit]
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCITY\tCOUNTRY\tCATEGORY\tCOORDINATES")
	for _, l := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.4f,%.4f\n", l.Name, l.City, l.Country, l.Category, l.Latitude, l.Longitude)
	}
	return tw.Flush()
}
