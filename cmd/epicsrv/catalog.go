package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tbaillis/epic-api/internal/rulebook/divine"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
	"github.com/tbaillis/epic-api/internal/rulebook/seeds"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in rulebook catalogs",
}

var catalogFeatsCmd = &cobra.Command{
	Use:   "feats",
	Short: "List capability descriptors",
	RunE:  runCatalogFeats,
}

var catalogSeedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List spell seeds",
	RunE:  runCatalogSeeds,
}

var catalogTiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List divine rank tiers",
	RunE:  runCatalogTiers,
}

var epicOnly bool

func init() {
	catalogFeatsCmd.Flags().BoolVar(&epicOnly, "epic", false, "only epic capabilities")

	catalogCmd.AddCommand(catalogFeatsCmd)
	catalogCmd.AddCommand(catalogSeedsCmd)
	catalogCmd.AddCommand(catalogTiersCmd)
}

func runCatalogFeats(cmd *cobra.Command, args []string) error {
	catalog, err := feats.DefaultCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSCORE\tPREREQS")
	for _, id := range catalog.IDs() {
		d, err := catalog.Get(id)
		if err != nil {
			return err
		}
		if epicOnly && !d.IsEpic() {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", d.ID, d.Name, d.Category, catalog.PowerScore(d), len(d.Prerequisites))
	}
	return w.Flush()
}

func runCatalogSeeds(cmd *cobra.Command, args []string) error {
	catalog, err := seeds.DefaultCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCHOOL\tBASE DC")
	for _, id := range catalog.IDs() {
		s, err := catalog.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.Name, s.School, s.BaseDC)
	}
	return w.Flush()
}

func runCatalogTiers(cmd *cobra.Command, args []string) error {
	ladder, err := divine.DefaultLadder()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTITLE\tMIN LEVEL\tIMMUNITIES\tCOSMIC POWERS")
	for rank := int32(0); rank <= 20; rank++ {
		tier, err := ladder.Tier(rank)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", tier.Rank, tier.Title, tier.MinLevel, len(tier.Immunities), len(tier.CosmicPowerIDs))
	}
	return w.Flush()
}
