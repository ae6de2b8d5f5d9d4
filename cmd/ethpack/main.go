// Command ethpack prints the Solidity packed encoding of typed values.
//
// Values are given as TYPE:LITERAL arguments or listed in a YAML manifest:
//
//	ethpack encode uint24:3838 uint256:4001 string:hello address:0xd8b9...3fa8
//	ethpack manifest --prefix payload.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/arloliu/ethpack/abi"
)

type cli struct {
	Verbose bool `help:"Log every packed value to stderr." short:"v"`

	Encode   encodeCmd   `cmd:"" help:"Pack TYPE:LITERAL arguments."`
	Manifest manifestCmd `cmd:"" help:"Pack the values listed in a YAML manifest."`
}

// OutputFlags are shared by every command.
type OutputFlags struct {
	Prefix bool `help:"Prefix the hex output with 0x."`
	Strict bool `help:"Reject narrow integers that do not fit their declared width."`
	Raw    bool `help:"Write the packed bytes instead of a hex line."`
}

// valueParser returns the literal parser matching the strict flag.
func (f OutputFlags) valueParser() parseFunc {
	if f.Strict {
		return abi.ParseValueStrict
	}

	return abi.ParseValue
}

type encodeCmd struct {
	OutputFlags `embed:""`

	Values []string `arg:"" name:"value" help:"Values as TYPE:LITERAL, e.g. uint24:3838 or string:hello."`
}

type manifestCmd struct {
	OutputFlags `embed:""`

	File string `arg:"" type:"existingfile" help:"YAML manifest with a 'values' list of {type, value} entries."`
}

// app carries what commands need from main.
type app struct {
	logger *zap.Logger
	out    io.Writer
}

func (c *encodeCmd) Run(a *app) error {
	parseArg := abi.ParseArg
	if c.Strict {
		parseArg = abi.ParseArgStrict
	}

	values := make([]abi.Value, 0, len(c.Values))
	for i, arg := range c.Values {
		v, err := parseArg(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		values = append(values, v)
	}

	return a.emit(values, c.OutputFlags)
}

func (c *manifestCmd) Run(a *app) error {
	values, err := loadManifest(c.File, c.valueParser())
	if err != nil {
		return err
	}
	a.logger.Debug("loaded manifest", zap.String("file", c.File), zap.Int("values", len(values)))

	return a.emit(values, c.OutputFlags)
}

// emit packs values and writes the hex line, or the raw bytes, to a.out.
func (a *app) emit(values []abi.Value, flags OutputFlags) error {
	encoder, err := abi.NewEncoder(
		abi.WithStrictWidths(flags.Strict),
		abi.WithCapacity(abi.PackedSize(values...)),
	)
	if err != nil {
		return err
	}
	defer encoder.Finish()

	for i, v := range values {
		if err := encoder.Write(v); err != nil {
			return err
		}
		a.logger.Debug("packed value",
			zap.Int("index", i),
			zap.String("type", abi.TypeName(v)),
			zap.Int("size", v.Size()),
			zap.Int("offset", encoder.Size()-v.Size()),
		)
	}

	a.logger.Debug("encoded", zap.Int("bytes", encoder.Size()), zap.Bool("strict", flags.Strict))

	if flags.Raw {
		_, err = encoder.WriteTo(a.out)
		return err
	}

	hexStr := encoder.Hex()
	if flags.Prefix {
		hexStr = "0x" + hexStr
	}

	_, err = fmt.Fprintln(a.out, hexStr)

	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

func newParser(grammar *cli, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("ethpack"),
		kong.Description("Print the Solidity abi.encodePacked encoding of typed values."),
	}, options...)

	return kong.New(grammar, options...)
}

// run parses args and executes the selected command, writing output to out.
func run(args []string, out io.Writer, options ...kong.Option) error {
	var grammar cli
	parser, err := newParser(&grammar, options...)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(grammar.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return ctx.Run(&app{logger: logger, out: out})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ethpack: %v\n", err)
		os.Exit(1)
	}
}
