// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mlpnet/loader"
	"github.com/katalvlaran/mlpnet/matrix"
	"github.com/katalvlaran/mlpnet/mlp"
)

const (
	promptText = "Please insert image path: "
	quitWord   = "q"
)

type rootFlags struct {
	images  []string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "mlpnet w1 w2 w3 w4 b1 b2 b3 b4",
		Short: "Classify handwritten digits with a pre-trained MLP",
		Long: "mlpnet loads the weight and bias files of a four-layer perceptron and\n" +
			"prints the predicted digit for each image, with the image drawn as text.",
		Args:         cobra.ExactArgs(2 * mlp.MLPSize),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}
	cmd.Flags().StringArrayVarP(&flags.images, "image", "i", nil, "image file to classify (repeatable)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags rootFlags) error {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	paths := lo.Chunk(args, mlp.MLPSize)
	weights, biases, err := loader.LoadParameters(cmd.Context(), paths[0], paths[1],
		mlp.DefaultWeightShapes[:], mlp.DefaultBiasShapes[:])
	if err != nil {
		return err
	}
	net, err := mlp.New(weights, biases)
	if err != nil {
		return err
	}
	log.Debug("network loaded", "depth", net.Depth(), "inputs", net.InputSize(), "classes", net.OutputSize())

	out := cmd.OutOrStdout()
	if len(flags.images) > 0 {
		for _, p := range flags.images {
			if err = classify(out, net, p, log); err != nil {
				return err
			}
		}

		return nil
	}

	return prompt(cmd.InOrStdin(), out, net, log)
}

// prompt reads image paths line by line until quitWord or EOF. A bad path is
// logged and the loop continues.
func prompt(in io.Reader, out io.Writer, net *mlp.Network, log *slog.Logger) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptText)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case quitWord:
			return nil
		case "":
			continue
		}
		if err := classify(out, net, line, log); err != nil {
			log.Error("classification failed", "path", line, "err", err)
		}
	}
}

// classify loads one image, draws it and prints the prediction.
func classify(out io.Writer, net *mlp.Network, path string, log *slog.Logger) error {
	img, err := loader.LoadMatrix(path, mlp.ImageRows, mlp.ImageCols)
	if err != nil {
		return err
	}
	d, err := net.Predict(img.Vectorized())
	if err != nil {
		return err
	}
	log.Debug("classified", "path", path, "digit", d.Value, "probability", d.Probability)

	if _, err = matrix.Render(out, img); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Mlp result: %d at probability: %g\n", d.Value, d.Probability)

	return err
}
