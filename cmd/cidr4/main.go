package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/yago-123/cidr4"
	"github.com/yago-123/cidr4/planstore"
)

const (
	defaultSeedBlock      = "10.0.0.0/16"
	defaultResolverOffset = 2
)

var (
	verbose bool

	planFile string
	seed     string
	checked  bool
	offset   int

	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "cidr4",
	Short: "IPv4 CIDR bookkeeping: overlap checks, canonical ordering, block allocation",
	Long: `cidr4 works over dotted-decimal CIDR blocks (A.B.C.D/N). It checks
reservations for overlap, sorts them canonically, allocates a fresh block
past the existing ones, and derives fixed-offset service addresses such as
the DNS resolver slot at base+2.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cidr4 %s (commit: %s)\n", version, commit)
	},
}

var overlapCmd = &cobra.Command{
	Use:   "overlap CIDR CIDR",
	Short: "Report whether two blocks' address ranges intersect",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cidr4.ParseBlock(args[0])
		if err != nil {
			return err
		}
		b, err := cidr4.ParseBlock(args[1])
		if err != nil {
			return err
		}
		fmt.Println(cidr4.Overlaps(a, b))
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort CIDR...",
	Short: "Print blocks in canonical order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := parseAll(args)
		if err != nil {
			return err
		}
		cidr4.SortBlocks(blocks)
		for _, b := range blocks {
			fmt.Println(b)
		}
		return nil
	},
}

var allocateCmd = &cobra.Command{
	Use:   "allocate [RESERVATION...]",
	Short: "Allocate a block clear of the given reservations",
	Long: `Allocate picks a block past the supplied reservations. With --plan the
reservation list is read from (and the chosen block written back to) a JSON
plan file; an allocation already persisted there is reused as is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verbose)

		plan := &planstore.Plan{Reservations: args}
		if planFile != "" {
			loaded, err := planstore.Load(planFile)
			if err != nil {
				return err
			}
			if loaded.Allocated != "" {
				log.Debug("reusing persisted allocation", "block", loaded.Allocated)
				fmt.Println(loaded.Allocated)
				return nil
			}
			loaded.Reservations = append(loaded.Reservations, args...)
			plan = loaded
		}

		seedBlock, err := cidr4.ParseBlock(seed)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		reserved, err := parseAll(plan.Reservations)
		if err != nil {
			return err
		}
		cidr4.SortBlocks(reserved)

		var chosen cidr4.Block
		if checked {
			c, ok := cidr4.AllocateChecked(seedBlock, reserved)
			if !ok {
				return errors.New("address space exhausted, no free block past the reservations")
			}
			chosen = c
		} else {
			chosen = cidr4.Allocate(seedBlock, reserved)
		}

		plan.Allocated = chosen.String()
		if planFile != "" {
			if err := planstore.Save(planFile, plan); err != nil {
				return err
			}
		}
		log.Info("allocated block", "block", plan.Allocated, "reservations", len(reserved))
		fmt.Println(plan.Allocated)
		return nil
	},
}

var resolverAddrCmd = &cobra.Command{
	Use:   "resolver-addr CIDR",
	Short: "Derive the fixed-offset service address inside a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := cidr4.ServiceAddress(args[0], offset)
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

func parseAll(cidrs []string) ([]cidr4.Block, error) {
	blocks := make([]cidr4.Block, 0, len(cidrs))
	for _, s := range cidrs {
		b, err := cidr4.ParseBlock(s)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")

	allocateCmd.Flags().StringVar(&planFile, "plan", "", "JSON plan file holding reservations and the chosen block")
	allocateCmd.Flags().StringVar(&seed, "seed", defaultSeedBlock, "seed block to allocate from")
	allocateCmd.Flags().BoolVar(&checked, "checked", false, "verify the result against every reservation")

	resolverAddrCmd.Flags().IntVar(&offset, "offset", defaultResolverOffset, "offset from the block base address")

	rootCmd.AddCommand(versionCmd, overlapCmd, sortCmd, allocateCmd, resolverAddrCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
