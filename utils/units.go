package utils

import "time"

func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return SprintfNoEscape("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return SprintfNoEscape("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return SprintfNoEscape("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return SprintfNoEscape("%.*f K", decimals, number/1000)
	}

	return SprintfNoEscape("%.*f ", decimals, number)
}

// HashRate formats hashes over elapsed as "<n> <prefix>H/s"
func HashRate(hashes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "0 H/s"
	}
	return SiUnits(float64(hashes)/elapsed.Seconds(), 2) + "H/s"
}
