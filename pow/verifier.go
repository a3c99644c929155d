package pow

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/floatdrop/lru"
	"golang.org/x/crypto/blake2b"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

// DefaultCacheSize of recently verified inputs kept by a Verifier
const DefaultCacheSize = 4096

var ErrVerifierClosed = errors.New("pow: verifier closed")

// Verifier hashes inputs on a single owned Context and checks them against a difficulty.
// Results are cached by a BLAKE2b digest of the input, so resubmitted work is not rehashed.
// It is safe for concurrent use; hashing is serialized.
type Verifier struct {
	entry cryptonight.Entry

	lock  sync.Mutex
	ctx   *cryptonight.Context
	cache *lru.LRU[types.Hash, types.Hash]

	hits, misses atomic.Uint64
}

// NewVerifier allocates the context for entry, which must be a single pipeline.
// A cacheSize of zero or less disables the cache.
func NewVerifier(entry cryptonight.Entry, cacheSize int) (*Verifier, error) {
	if entry.Kind() != cryptonight.KindSingle {
		return nil, fmt.Errorf("%w: verifier needs a single pipeline, got %s", cryptonight.ErrInvalidVariant, entry)
	}
	if !entry.Available() {
		return nil, fmt.Errorf("%w: %s", cryptonight.ErrHardwareUnavailable, entry)
	}

	ctx, err := entry.NewContext()
	if err != nil {
		return nil, err
	}

	v := &Verifier{
		entry: entry,
		ctx:   ctx,
	}
	if cacheSize > 0 {
		v.cache = lru.New[types.Hash, types.Hash](cacheSize)
	}
	utils.Debugf("PoW", "verifier using %s, cache size %d", entry, cacheSize)
	return v, nil
}

func (v *Verifier) Entry() cryptonight.Entry {
	return v.entry
}

// Hash returns the CryptoNight hash of input, from cache when possible.
func (v *Verifier) Hash(input []byte) (types.Hash, error) {
	key := types.Hash(blake2b.Sum256(input))

	v.lock.Lock()
	defer v.lock.Unlock()

	if v.ctx == nil {
		return types.ZeroHash, ErrVerifierClosed
	}

	if v.cache != nil {
		if sum := v.cache.Get(key); sum != nil {
			v.hits.Add(1)
			return *sum, nil
		}
	}
	v.misses.Add(1)

	sum := v.entry.Sum(v.ctx, input)
	if v.cache != nil {
		v.cache.Set(key, sum)
	}
	return sum, nil
}

// Verify hashes input and reports whether the result meets difficulty.
func (v *Verifier) Verify(input []byte, difficulty types.Difficulty) (types.Hash, bool, error) {
	sum, err := v.Hash(input)
	if err != nil {
		return types.ZeroHash, false, err
	}
	return sum, difficulty.CheckPoW(sum), nil
}

// Stats returns cache hits and misses so far
func (v *Verifier) Stats() (hits, misses uint64) {
	return v.hits.Load(), v.misses.Load()
}

func (v *Verifier) Close() error {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.ctx == nil {
		return ErrVerifierClosed
	}
	err := v.ctx.Close()
	v.ctx, v.cache = nil, nil
	return err
}
