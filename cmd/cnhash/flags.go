package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

const envPrefix = "CNHASH_"

// flagToEnv maps --hash-count to CNHASH_HASH_COUNT
func flagToEnv(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// setFlagsFromEnv fills every flag not given on the command line from its environment variable.
func setFlagsFromEnv(flags *pflag.FlagSet) (err error) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed {
			return
		}
		envKey := flagToEnv(flag.Name)
		envValue, found := os.LookupEnv(envKey)
		if !found {
			return
		}
		if setErr := flags.Set(flag.Name, envValue); setErr != nil {
			err = fmt.Errorf("invalid value when setting --%s from environment variable %s=%q: %w", flag.Name, envKey, envValue, setErr)
			return
		}
		utils.Debugf("cnhash", "setting --%s %q from environment variable %s", flag.Name, envValue, envKey)
	})
	return err
}

// variantFlags selects a dispatch table entry
type variantFlags struct {
	profile string
	cipher  string
	double  bool
}

func (v *variantFlags) register(flags *pflag.FlagSet, allowDouble bool) {
	flags.StringVarP(&v.profile, "profile", "p", "standard", "Algorithm profile: standard or lite")
	flags.StringVarP(&v.cipher, "cipher", "c", "auto", "AES implementation: auto, hardware or software")
	if allowDouble {
		flags.BoolVarP(&v.double, "double", "d", false, "Hash two inputs at a time")
	}
}

func (v *variantFlags) entry() (cryptonight.Entry, error) {
	profile, err := cryptonight.ParseProfile(v.profile)
	if err != nil {
		return cryptonight.Entry{}, err
	}
	cipher, err := cryptonight.ParseCipher(v.cipher)
	if err != nil {
		return cryptonight.Entry{}, err
	}
	kind := cryptonight.KindSingle
	if v.double {
		kind = cryptonight.KindDouble
	}
	entry, err := cryptonight.Select(profile, cipher, kind)
	if err != nil {
		return cryptonight.Entry{}, err
	}
	utils.Debugf("cnhash", "selected %s (index %d)", entry, entry.Index())
	return entry, nil
}
