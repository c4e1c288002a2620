package cmd

import (
	"fmt"
	"os"

	"github.com/bugVanisher/goasf/media/container/asf"
	"github.com/bugVanisher/goasf/statistics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print per-file and per-stream summary statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			if err := infoFile(path); err != nil {
				log.Error().Err(err).Str("file", path).Msg("parse failed")
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("one or more files failed to parse")
		}
		return nil
	},
}

func infoFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	container, err := asf.Parse(buf)
	if err != nil {
		return err
	}
	stat := statistics.Collect(container)
	fmt.Printf("%s: %s\n", path, stat)
	return nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
