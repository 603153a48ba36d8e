package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tbaillis/epic-api/internal/orchestrators/progression"
	"github.com/tbaillis/epic-api/internal/rulebook/classes"
	"github.com/tbaillis/epic-api/internal/rulebook/feats"
)

var (
	planFrom  int32
	planTo    int32
	planClass string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run an advancement and print the per-level schedule",
	Long: `plan walks the advancement tables from one level to another without
touching any character, printing the experience requirement, epic feat
slots, and ability increases each level would surface.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Int32Var(&planFrom, "from", 20, "current level")
	planCmd.Flags().Int32Var(&planTo, "to", 30, "target level")
	planCmd.Flags().StringVar(&planClass, "class", "fighter", "class ID")
}

func runPlan(cmd *cobra.Command, args []string) error {
	table := classes.DefaultTable()
	classCfg, err := table.Get(planClass)
	if err != nil {
		return err
	}
	if planTo <= planFrom {
		return fmt.Errorf("target level %d must be greater than current level %d", planTo, planFrom)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tXP REQUIRED\tATTACK\tSAVES\tFEAT SLOT\tABILITY INCREASES")
	for level := planFrom + 1; level <= planTo; level++ {
		featSlot := ""
		if feats.EpicFeatDue(level) {
			featSlot = "yes"
		}
		fmt.Fprintf(w, "%d\t%d\t+%d\t+%d\t%s\t%d\n",
			level,
			progression.RequiredExperience(level),
			classes.EpicAttackBonusGain(level),
			classes.EpicSaveBonusGain(level),
			featSlot,
			feats.DueIncreases(level),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nclass %s: d%d hit die, %d base skill points\n", classCfg.ID, classCfg.HitDie, classCfg.SkillPointsBase)
	fmt.Printf("epic feats held by level %d: %d\n", planTo, feats.EpicFeatsGrantedBy(planTo))
	return nil
}
