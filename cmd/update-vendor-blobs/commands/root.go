package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kartik-commits/update-vendor-blobs/internal/config"
	"github.com/kartik-commits/update-vendor-blobs/internal/dedup"
	"github.com/kartik-commits/update-vendor-blobs/internal/output"
	"github.com/kartik-commits/update-vendor-blobs/internal/proplist"
)

var (
	flagDryRun  bool
	flagVerbose bool
	flagNoColor bool
	flagOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "update-vendor-blobs <common-file> <device-file>",
	Short: "Remove device blob entries already present in a common list",
	Long: `update-vendor-blobs rewrites a device proprietary-files list, dropping
every entry that also appears in the shared common list. Sections whose
entries are all duplicates are removed entirely; surviving sections keep
their original order and inline comments.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runDedupe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "Show what would be removed without writing anything")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log loaded entry counts and each removed line")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the result here instead of overwriting the device file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runDedupe(cmd *cobra.Command, args []string) error {
	commonPath, devicePath := args[0], args[1]

	applyConfigDefaults(cmd, devicePath)
	if os.Getenv("NO_COLOR") != "" {
		flagNoColor = true
	}

	log := &output.Console{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Verbose: flagVerbose,
		NoColor: flagNoColor,
	}

	for _, path := range []string{commonPath, devicePath} {
		if err := proplist.ValidateFile(path); err != nil {
			return err
		}
	}

	common, err := proplist.ParseFile(commonPath)
	if err != nil {
		return err
	}
	device, err := proplist.ParseFile(devicePath)
	if err != nil {
		return err
	}

	d := dedup.New(log)
	d.LoadCommon(common)
	res := d.Filter(device)

	if flagDryRun {
		log.PrintRemovals(res.RemovedLines)
		log.Infof("Dry run - no changes made")
		return nil
	}

	dest := devicePath
	if flagOutput != "" {
		dest = flagOutput
	}
	if err := os.WriteFile(dest, []byte(res.Output), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	log.Infof("Successfully removed duplicates")
	return nil
}

// applyConfigDefaults fills in flags the user did not set explicitly from
// the device tree's .vendorblobs.yml, if there is one.
func applyConfigDefaults(cmd *cobra.Command, devicePath string) {
	cfg, err := config.Load(devicePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		flagVerbose = true
	}
	if !cmd.Flags().Changed("no-color") && cfg.NoColor {
		flagNoColor = true
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		flagOutput = cfg.Output
	}
}
