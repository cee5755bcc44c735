package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/unkn0wn-root/rlp"
	"github.com/unkn0wn-root/rlp/codec"
	"github.com/unkn0wn-root/rlp/normalize"
	"github.com/unkn0wn-root/rlp/store"
)

var (
	streamFlag = &cli.BoolFlag{
		Name:  "stream",
		Usage: "input is a concatenation of values; print one per line",
	}
	toFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "target format (cbor, json, msgpack, proto, rlp)",
		Required: true,
	}
	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "source format (cbor, json, msgpack, proto, rlp)",
		Value: "rlp",
	}
)

var (
	encodeCommand = &cli.Command{
		Name:      "encode",
		Usage:     "Encode a JSON literal",
		ArgsUsage: "<literal>",
		Action:    encode,
	}
	decodeCommand = &cli.Command{
		Name:      "decode",
		Usage:     "Decode hex input into a literal",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{streamFlag},
		Action:    decode,
	}
	probeCommand = &cli.Command{
		Name:      "probe",
		Usage:     "Print the encoded length of the leading value",
		ArgsUsage: "<hex>",
		Action:    probe,
	}
	convertCommand = &cli.Command{
		Name:      "convert",
		Usage:     "Transcode a value tree between formats",
		ArgsUsage: "<hex | json>",
		Flags:     []cli.Flag{toFlag, fromFlag},
		Action:    convert,
	}
	hashCommand = &cli.Command{
		Name:      "hash",
		Usage:     "Print keccak256 of a canonical encoding",
		ArgsUsage: "<hex>",
		Action:    hash,
	}
)

func oneArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one argument, got %d", ctx.Command.Name, ctx.NArg())
	}
	return ctx.Args().First(), nil
}

func hexArg(ctx *cli.Context) ([]byte, error) {
	s, err := oneArg(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Hex(s)
}

func encode(ctx *cli.Context) error {
	s, err := oneArg(ctx)
	if err != nil {
		return err
	}
	v, err := parseLiteral(s)
	if err != nil {
		return err
	}
	logger(ctx).WithField("size", rlp.EncodedSize(v)).Debug("encoding literal")
	_, err = fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(rlp.Encode(v)))
	return err
}

func decode(ctx *cli.Context) error {
	b, err := hexArg(ctx)
	if err != nil {
		return err
	}
	d := decoder(ctx)
	if !ctx.Bool(streamFlag.Name) {
		v, err := d.DecodeValue(b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, v)
		return err
	}
	for off := 0; len(b) > 0; {
		v, rest, err := d.DecodeStream(b)
		if err != nil {
			return fmt.Errorf("value at byte %d: %w", off, err)
		}
		if _, err := fmt.Fprintln(ctx.App.Writer, v); err != nil {
			return err
		}
		off += len(b) - len(rest)
		b = rest
	}
	return nil
}

func probe(ctx *cli.Context) error {
	b, err := hexArg(ctx)
	if err != nil {
		return err
	}
	n, err := rlp.ProbeLength(b)
	if err != nil {
		return err
	}
	if n > uint64(len(b)) {
		logger(ctx).WithFields(logrus.Fields{"declared": n, "have": len(b)}).Info("input is shorter than the declared value")
	}
	_, err = fmt.Fprintln(ctx.App.Writer, n)
	return err
}

func convert(ctx *cli.Context) error {
	fromName := strings.ToLower(ctx.String(fromFlag.Name))
	toName := strings.ToLower(ctx.String(toFlag.Name))
	from, err := lookup(ctx, fromName)
	if err != nil {
		return err
	}
	to, err := lookup(ctx, toName)
	if err != nil {
		return err
	}
	arg, err := oneArg(ctx)
	if err != nil {
		return err
	}

	in := []byte(arg)
	if fromName != "json" {
		if in, err = normalize.Hex(arg); err != nil {
			return err
		}
	}
	out, err := codec.Transcode(from, to, in)
	if err != nil {
		return err
	}
	if toName == "json" {
		_, err = fmt.Fprintln(ctx.App.Writer, string(out))
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(out))
	return err
}

// lookup resolves a lower-case format name; rlp uses the configured decoder.
func lookup(ctx *cli.Context, name string) (codec.Codec[rlp.Value], error) {
	if name == "rlp" {
		return codec.RLP{Decoder: decoder(ctx)}, nil
	}
	return codec.Lookup(name)
}

func hash(ctx *cli.Context) error {
	b, err := hexArg(ctx)
	if err != nil {
		return err
	}
	if _, err := (codec.Raw{Decoder: decoder(ctx)}).Decode(b); err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, "0x"+store.HashOf(b).String())
	return err
}
