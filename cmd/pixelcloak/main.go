// Command pixelcloak hides files inside PNG/BMP images and recovers them.
//
// Usage:
//
//	pixelcloak conceal <carrier-image> <secret-file> <output-image>
//	pixelcloak reveal <stego-image> <output-file>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pixelcloak/pixelcloak"
	"github.com/pixelcloak/pixelcloak/errs"
)

var (
	verbose bool
	log     = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "pixelcloak",
	Short: "Hide files inside lossless images",
	Long: `pixelcloak embeds an arbitrary file into the least-significant bits of a
PNG or BMP image's color channels, and recovers it exactly later.

Only lossless carrier formats are supported; re-saving the output image with
a lossy or palette format destroys the hidden data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = log.Level(zerolog.DebugLevel)
		}
	},
}

var concealCmd = &cobra.Command{
	Use:   "conceal <carrier-image> <secret-file> <output-image>",
	Short: "Embed a file into a carrier image",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, secret, output := args[0], args[1], args[2]

		report, err := pixelcloak.Conceal(carrier, secret, output)
		if err != nil {
			return err
		}

		log.Debug().
			Uint64("capacity_bits", report.CapacityBits).
			Uint64("required_bits", report.RequiredBits).
			Msg("carrier capacity")
		log.Info().
			Str("output", output).
			Stringer("format", report.Format).
			Int("payload_bytes", report.PayloadBytes).
			Str("payload_digest", digestString(report.PayloadDigest)).
			Msg("payload concealed")

		return nil
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal <stego-image> <output-file>",
	Short: "Recover the file hidden in an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stego, output := args[0], args[1]

		report, err := pixelcloak.Reveal(stego, output)
		if errors.Is(err, errs.ErrEmptyPayload) {
			log.Warn().Str("image", stego).Msg("image carries no payload, nothing written")
			return nil
		}
		if err != nil {
			return err
		}

		log.Info().
			Str("output", output).
			Int("payload_bytes", report.PayloadBytes).
			Str("payload_digest", digestString(report.PayloadDigest)).
			Msg("payload revealed")

		return nil
	},
}

func digestString(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(concealCmd, revealCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("operation failed")
		os.Exit(1)
	}
}
