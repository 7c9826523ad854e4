// Command sdrtool is a small workbench for SDR stream files.
//
// Usage:
//
//	sdrtool gen --dims=20,20 [--sparsity=0.02] [--seed=N] [--format=binary] --out=FILE
//	sdrtool convert --from=binary --to=json --in=FILE --out=FILE
//	sdrtool info --format=binary --in=FILE
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/sdrkit/sdr"
	"github.com/katalvlaran/sdrkit/sdrio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage())
	}

	switch args[0] {
	case "gen":
		return cmdGen(args[1:])
	case "convert":
		return cmdConvert(args[1:])
	case "info":
		return cmdInfo(args[1:])
	case "help", "-h", "--help":
		fmt.Println(usage())

		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[0], usage())
	}
}

func usage() string {
	return `sdrtool - SDR stream workbench

Commands:
  gen --dims=20,20 [--sparsity=0.02] [--seed=N] [--format=F] --out=FILE
      Write a random pattern to FILE.
  convert --from=F --to=F --in=FILE --out=FILE
      Re-encode a stream between formats.
  info --format=F --in=FILE
      Print dimensions, active bit count and sparsity of a stream.

Formats: binary (default), portable, json, xml. "-" means stdin/stdout.`
}

func cmdGen(args []string) error {
	flagSet := flag.NewFlagSet("gen", flag.ContinueOnError)
	dims := flagSet.IntSlice("dims", nil, "Pattern dimensions, comma separated")
	sparsity := flagSet.Float64("sparsity", 0.02, "Fraction of bits to set")
	seed := flagSet.Int64("seed", 42, "RNG seed")
	formatName := flagSet.String("format", "binary", "Output format")
	out := flagSet.String("out", "-", "Output file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	format, err := sdrio.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	p, err := sdr.NewPattern(*dims)
	if err != nil {
		return err
	}
	if err = p.Randomize(*sparsity, rand.New(rand.NewSource(*seed))); err != nil {
		return err
	}

	return writeNode(*out, p, format)
}

func cmdConvert(args []string) error {
	flagSet := flag.NewFlagSet("convert", flag.ContinueOnError)
	fromName := flagSet.String("from", "binary", "Input format")
	toName := flagSet.String("to", "json", "Output format")
	in := flagSet.String("in", "-", "Input file")
	out := flagSet.String("out", "-", "Output file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	from, err := sdrio.ParseFormat(*fromName)
	if err != nil {
		return err
	}
	to, err := sdrio.ParseFormat(*toName)
	if err != nil {
		return err
	}

	p, err := readNode(*in, from)
	if err != nil {
		return err
	}

	return writeNode(*out, p, to)
}

func cmdInfo(args []string) error {
	flagSet := flag.NewFlagSet("info", flag.ContinueOnError)
	formatName := flagSet.String("format", "binary", "Input format")
	in := flagSet.String("in", "-", "Input file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	format, err := sdrio.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	p, err := readNode(*in, format)
	if err != nil {
		return err
	}

	sum, err := p.Sum()
	if err != nil {
		return err
	}

	fmt.Printf("dimensions: %v\n", p.Dimensions())
	fmt.Printf("size:       %d\n", p.Size())
	fmt.Printf("encoding:   %s\n", p.Authoritative())
	fmt.Printf("active:     %d\n", sum)
	fmt.Printf("sparsity:   %.4f\n", float64(sum)/float64(p.Size()))

	return nil
}

func readNode(path string, format sdrio.Format) (*sdr.Pattern, error) {
	if path == "-" {
		return sdrio.Load(os.Stdin, format)
	}

	return sdrio.LoadFile(path, format)
}

func writeNode(path string, node sdr.SDR, format sdrio.Format) error {
	if path == "-" {
		return sdrio.Save(os.Stdout, node, format)
	}

	return sdrio.SaveFile(path, node, format)
}
