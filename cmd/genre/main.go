package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/genre"
	"github.com/hscells/genre/cmd"
)

var (
	name    = "genre"
	version = "19.Oct.2026"
)

type args struct {
	Train      string `help:"path to the labelled training file" arg:"-t"`
	Test       string `help:"path to the file of movies to predict" arg:"-e"`
	Output     string `help:"path predictions and metrics are written to" arg:"-o"`
	Report     string `help:"path to write per-genre scores to as CSV" arg:"-r"`
	Properties string `help:"path to a properties file of hyper-parameters" arg:"-p"`
	Quiet      bool   `help:"do not display progress bars" arg:"-q"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
# %s
train a multi-label genre classifier on movie plots and predict the genres of unseen movies`, name, version)
}

func main() {
	args := args{
		Train:  genre.DefaultTrainPath,
		Test:   genre.DefaultTestPath,
		Output: genre.DefaultOutputPath,
	}
	arg.MustParse(&args)

	components := []func() interface{}{genre.Report(args.Report)}
	if !args.Quiet {
		components = append(components, genre.Progress(os.Stderr))
	}
	if len(args.Properties) > 0 {
		c, err := cmd.Properties(args.Properties)
		if err != nil {
			log.Fatalln(err)
		}
		components = append(components, c...)
	}

	_, err := genre.NewPipeline(args.Train, args.Test, args.Output, components...).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, 0).ErrorStack())
		os.Exit(1)
	}
	fmt.Printf("Model evaluation results and metrics have been saved to '%s'.\n", args.Output)
}
