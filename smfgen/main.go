// smfgen is a command-line tool for building and inspecting standard MIDI
// files (SMF, usually with a ".mid" extension). It can compose a .mid file
// from a YAML song description, print the header of an existing file, and
// decode a hex-encoded track event.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/davmori/smf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:           "smfgen",
		Short:         "Build and inspect standard MIDI files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	root.AddCommand(composeCommand(), infoCommand(), eventCommand())
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.mid>",
		Short: "Print the MThd header of a MIDI file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			header, err := smf.ParseHeader(data)
			if err != nil {
				return errors.Wrapf(err, "parsing MThd chunk in %s", args[0])
			}
			fmt.Println(header)
			return nil
		},
	}
}

func eventCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "event <hex bytes>",
		Short: "Decode a hex-encoded track event (delta time + message)",
		Long: "Decodes a track event given as hex bytes, e.g. " +
			"\"00 93 3c 64\". The event must start with its delta time and " +
			"carry its own status byte; meta events and running status are " +
			"not supported here.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compact := strings.ReplaceAll(strings.Join(args, ""), " ", "")
			data, err := hex.DecodeString(compact)
			if err != nil {
				return errors.Wrap(err, "invalid hex bytes")
			}
			delta, n, err := smf.DecodeVql(data)
			if err != nil {
				return errors.Wrap(err, "decoding delta time")
			}
			log.Debugf("delta time used %d byte(s)", n)
			message, consumed, err := smf.ParseMessage(data[n:])
			if err != nil {
				return errors.Wrap(err, "decoding message")
			}
			fmt.Printf("delta %d: %s\n", delta.Value(), message)
			if rest := len(data) - n - consumed; rest > 0 {
				log.Warnf("%d trailing byte(s) ignored", rest)
			}
			return nil
		},
	}
}
