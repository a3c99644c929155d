package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	fasthex "github.com/tmthrgd/go-hex"

	"git.gammaspectra.live/P2Pool/cryptonight/pow"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

type hashResult struct {
	Input types.Bytes `json:"input"`
	Hash  types.Hash  `json:"hash"`
}

func newHashCommand() *cobra.Command {
	var (
		variant  variantFlags
		hexInput bool
		jsonOut  bool
		threads  int
	)

	cmd := &cobra.Command{
		Use:   "hash [flags] INPUT...",
		Short: "Print the CryptoNight hash of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := variant.entry()
			if err != nil {
				return err
			}

			inputs := make([][]byte, len(args))
			for i, arg := range args {
				if !hexInput {
					inputs[i] = []byte(arg)
					continue
				}
				if inputs[i], err = fasthex.DecodeString(arg); err != nil {
					return fmt.Errorf("input %d: %w", i, err)
				}
			}

			sums, err := pow.HashBatch(context.Background(), entry, inputs, threads)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				encoder := utils.NewJSONEncoder(out)
				for i := range sums {
					if err = encoder.Encode(hashResult{Input: inputs[i], Hash: sums[i]}); err != nil {
						return err
					}
				}
				return nil
			}
			for i := range sums {
				if _, err = fmt.Fprintf(out, "%s  %s\n", sums[i], args[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	variant.register(cmd.Flags(), true)
	cmd.Flags().BoolVarP(&hexInput, "hex", "x", false, "Inputs are hex encoded")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print one JSON object per input")
	cmd.Flags().IntVarP(&threads, "threads", "t", 1, "Worker goroutines, 0 or less is relative to the CPU count")

	return cmd
}
