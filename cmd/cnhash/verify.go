package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	fasthex "github.com/tmthrgd/go-hex"

	"git.gammaspectra.live/P2Pool/cryptonight/pow"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

var errInsufficientDifficulty = errors.New("hash does not meet difficulty")

type verifyResult struct {
	Input         types.Bytes      `json:"input"`
	Hash          types.Hash       `json:"hash"`
	Difficulty    types.Difficulty `json:"difficulty"`
	PoWDifficulty types.Difficulty `json:"pow_difficulty"`
	Valid         bool             `json:"valid"`
}

func newVerifyCommand() *cobra.Command {
	var (
		variant    variantFlags
		difficulty string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "verify --difficulty D [flags] INPUT_HEX",
		Short: "Hash a blob and check it against a difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				return errors.New("--difficulty is required")
			}
			target, err := types.ParseDifficulty(difficulty)
			if err != nil {
				return fmt.Errorf("--difficulty: %w", err)
			}
			input, err := fasthex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}
			entry, err := variant.entry()
			if err != nil {
				return err
			}

			verifier, err := pow.NewVerifier(entry, 0)
			if err != nil {
				return err
			}
			defer verifier.Close()

			sum, valid, err := verifier.Verify(input, target)
			if err != nil {
				return err
			}

			result := verifyResult{
				Input:         input,
				Hash:          sum,
				Difficulty:    target,
				PoWDifficulty: types.DifficultyFromPoW(sum),
				Valid:         valid,
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				err = utils.NewJSONEncoder(out).Encode(result)
			} else {
				_, err = fmt.Fprintf(out, "hash %s\npow difficulty %s\ntarget difficulty %s\nvalid %v\n",
					result.Hash, result.PoWDifficulty.StringNumeric(), result.Difficulty.StringNumeric(), result.Valid)
			}
			if err != nil {
				return err
			}
			if !valid {
				return errInsufficientDifficulty
			}
			return nil
		},
	}

	variant.register(cmd.Flags(), false)
	cmd.Flags().StringVarP(&difficulty, "difficulty", "D", "", "Target difficulty, decimal or 0x hex")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	return cmd
}
