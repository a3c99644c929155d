package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/pow"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

// blobSize of a typical Monero hashing blob
const blobSize = 76

// nonceOffset inside the hashing blob
const nonceOffset = 39

type benchResult struct {
	Variant  string  `json:"variant"`
	Index    int     `json:"index"`
	CPU      string  `json:"cpu"`
	Cores    int     `json:"cores"`
	Threads  int     `json:"threads"`
	Hashes   int     `json:"hashes"`
	Seconds  float64 `json:"seconds"`
	HashRate float64 `json:"hashrate"`
}

// benchInputs returns count blobs sharing one random prefix, differing only in the nonce
func benchInputs(count int) ([][]byte, error) {
	var blob [blobSize]byte
	if _, err := rand.Read(blob[:]); err != nil {
		return nil, err
	}
	inputs := make([][]byte, count)
	for i := range inputs {
		inputs[i] = append([]byte(nil), blob[:]...)
		binary.LittleEndian.PutUint32(inputs[i][nonceOffset:], uint32(i))
	}
	return inputs, nil
}

func runBench(ctx context.Context, entry cryptonight.Entry, threads, hashes int) (benchResult, error) {
	inputs, err := benchInputs(hashes)
	if err != nil {
		return benchResult{}, err
	}

	threads = utils.Routines(threads)
	utils.Logf("Bench", "%s on %s, %d threads, %d hashes", entry, cpuid.CPU.BrandName, threads, hashes)

	start := time.Now()
	if _, err = pow.HashBatch(ctx, entry, inputs, threads); err != nil {
		return benchResult{}, err
	}
	elapsed := time.Since(start)

	return benchResult{
		Variant:  entry.String(),
		Index:    entry.Index(),
		CPU:      cpuid.CPU.BrandName,
		Cores:    cpuid.CPU.PhysicalCores,
		Threads:  threads,
		Hashes:   hashes,
		Seconds:  elapsed.Seconds(),
		HashRate: float64(hashes) / elapsed.Seconds(),
	}, nil
}

func newBenchCommand() *cobra.Command {
	var (
		variant variantFlags
		threads int
		hashes  int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure hash rate over a worker pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hashes <= 0 {
				return fmt.Errorf("--hashes must be positive, got %d", hashes)
			}
			entry, err := variant.entry()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := runBench(ctx, entry, threads, hashes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return utils.NewJSONEncoder(out).Encode(result)
			}
			_, err = fmt.Fprintf(out, "%s: %d hashes in %.2fs on %d threads (%s, %d cores): %s\n",
				result.Variant, result.Hashes, result.Seconds, result.Threads, result.CPU, result.Cores,
				utils.HashRate(uint64(result.Hashes), time.Duration(result.Seconds*float64(time.Second))))
			return err
		},
	}

	variant.register(cmd.Flags(), true)
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "Worker goroutines, 0 or less is relative to the CPU count")
	cmd.Flags().IntVarP(&hashes, "hashes", "n", 64, "Number of hashes to compute")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	return cmd
}
