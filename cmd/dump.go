package cmd

import (
	"fmt"
	"os"

	"github.com/bugVanisher/goasf/media/container/asf"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>...",
	Short: "Parse ASF files and print the object model as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			if err := dumpFile(path); err != nil {
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

func dumpFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	container, err := asf.Parse(buf)
	if err != nil {
		return err
	}
	out, err := jsoniter.MarshalIndent(container, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
