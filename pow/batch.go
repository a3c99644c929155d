package pow

import (
	"context"
	"fmt"
	"time"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

// HashBatch hashes every input with entry, spreading the work over routines goroutines
// (see utils.Routines). Each routine owns one Context for the duration of the call.
// Double entries hash inputs in pairs; an odd final input is paired with an empty one
// whose result is dropped.
func HashBatch(ctx context.Context, entry cryptonight.Entry, inputs [][]byte, routines int) ([]types.Hash, error) {
	if !entry.Available() {
		return nil, fmt.Errorf("%w: %s", cryptonight.ErrHardwareUnavailable, entry)
	}

	ways := entry.Ways()
	out := make([]types.Hash, len(inputs))
	groups := (len(inputs) + ways - 1) / ways

	var contexts []*cryptonight.Context
	defer func() {
		for _, c := range contexts {
			if c != nil {
				_ = c.Close()
			}
		}
	}()

	start := time.Now()

	hash := entry.Func()
	err := utils.SplitWorkContext(ctx, routines, uint64(groups), func(workIndex uint64, routineIndex int) error {
		var sums [2]types.Hash
		i := int(workIndex) * ways
		group := inputs[i:min(i+ways, len(inputs))]
		if len(group) < ways {
			group = [][]byte{inputs[i], nil}
		}
		hash(contexts[routineIndex], group, sums[:ways])
		copy(out[i:], sums[:min(ways, len(inputs)-i)])
		return nil
	}, func(routines, routineIndex int) error {
		if contexts == nil {
			contexts = make([]*cryptonight.Context, routines)
		}
		c, err := entry.NewContext()
		if err != nil {
			return err
		}
		contexts[routineIndex] = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Debugf("PoW", "hashed %d inputs with %s on %d routines in %s", len(inputs), entry, len(contexts), time.Since(start))
	return out, nil
}
