// Command rlp encodes, decodes and inspects RLP data from the shell.
//
//	rlp encode '["dog", ["0x01", 2]]'   # -> hex
//	rlp decode c88363617483646f67        # -> ["0x636174", "0x646f67"]
//	rlp probe  f90400                    # -> 1027
//	rlp convert --to cbor c0             # -> 80
//	rlp hash   c0                        # -> keccak256
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/unkn0wn-root/rlp"
	rlplogrus "github.com/unkn0wn-root/rlp/log/logrus"
)

var (
	maxDepthFlag = &cli.IntFlag{
		Name:    "max-depth",
		Usage:   "maximum list nesting accepted when decoding",
		Value:   rlp.DefaultMaxDepth,
		EnvVars: []string{"RLP_MAX_DEPTH"},
	}
	verbosityFlag = &cli.IntFlag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0=warn, 1=info, 2+=debug)",
		EnvVars: []string{"RLP_VERBOSITY"},
	}
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rlp:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	app := &cli.App{
		Name:      "rlp",
		Usage:     "Recursive Length Prefix encoder and decoder",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{maxDepthFlag, verbosityFlag},
		Before: func(ctx *cli.Context) error {
			switch v := ctx.Int(verbosityFlag.Name); {
			case v >= 2:
				log.SetLevel(logrus.DebugLevel)
			case v == 1:
				log.SetLevel(logrus.InfoLevel)
			}
			if ctx.Int(maxDepthFlag.Name) <= 0 {
				return fmt.Errorf("--%s must be positive", maxDepthFlag.Name)
			}
			return nil
		},
		Commands: []*cli.Command{
			encodeCommand,
			decodeCommand,
			probeCommand,
			convertCommand,
			hashCommand,
		},
		// errors are printed once by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
	app.Metadata = map[string]any{"log": log}
	return app
}

func logger(ctx *cli.Context) *logrus.Logger {
	return ctx.App.Metadata["log"].(*logrus.Logger)
}

func decoder(ctx *cli.Context) *rlp.Decoder {
	return rlp.NewDecoder(rlp.Options{
		MaxDepth: ctx.Int(maxDepthFlag.Name),
		Logger:   rlplogrus.New(logrus.NewEntry(logger(ctx)).WithField("cmd", ctx.Command.Name)),
	})
}
