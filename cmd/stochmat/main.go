// Command stochmat classifies the states of finite Markov chains and prints
// their stationary distributions.
//
//	stochmat classes chains.yaml
//	stochmat gth chains.yaml
//	stochmat stationary --output=json --check chains.yaml
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/stochmat/internal/logging"
	"github.com/katalvlaran/stochmat/markov"
)

const version = "0.1.0"

// CLI defines the command-line interface for stochmat.
type CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})"`

	Classes    ClassesCmd    `cmd:"" help:"Print communication and recurrent classes"`
	GTH        GTHCmd        `cmd:"" name:"gth" help:"Run the GTH solver on each whole matrix"`
	Stationary StationaryCmd `cmd:"" help:"Print one stationary distribution per recurrent class"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// env is bound into every command's Run method.
type env struct {
	out   io.Writer
	log   *slog.Logger
	cache *markov.Cache
}

// newEnv builds the per-invocation environment from the global flags.
func (c *CLI) newEnv(stdout, stderr io.Writer) (*env, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}

	return &env{
		out:   stdout,
		log:   logging.New(stderr, level, format),
		cache: markov.NewCache(),
	}, nil
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("stochmat"),
		kong.Description("Communication classes and stationary distributions of finite Markov chains"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

// execute parses args and runs the selected command, writing results to
// stdout and logs to stderr.
func execute(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	opts := append(kongOptions(), kong.Writers(stdout, stderr))
	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	e, err := cli.newEnv(stdout, stderr)
	if err != nil {
		return err
	}

	return ctx.Run(e)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)
	e, err := cli.newEnv(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
	err = ctx.Run(e)
	ctx.FatalIfErrorf(err)
}
