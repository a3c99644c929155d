package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

type variantInfo struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Profile    string `json:"profile"`
	Cipher     string `json:"cipher"`
	Kind       string `json:"kind"`
	Memory     int    `json:"memory"`
	Iterations int    `json:"iterations"`
	Available  bool   `json:"available"`
}

func listVariants() []variantInfo {
	table := cryptonight.Table()
	infos := make([]variantInfo, 0, len(table))
	for _, e := range table {
		infos = append(infos, variantInfo{
			Index:      e.Index(),
			Name:       e.String(),
			Profile:    e.Profile().String(),
			Cipher:     e.Cipher().String(),
			Kind:       e.Kind().String(),
			Memory:     e.Profile().MemorySize() * e.Ways(),
			Iterations: e.Profile().Iterations(),
			Available:  e.Available(),
		})
	}
	return infos
}

func newVariantsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the dispatch table and what this CPU can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := listVariants()
			out := cmd.OutOrStdout()
			if jsonOut {
				return utils.NewJSONEncoder(out).Encode(infos)
			}

			utils.Logf("Variants", "%s, AES-NI %v, preferred cipher %s", cpuid.CPU.BrandName, cryptonight.HardwareAES(), cryptonight.PreferredCipher())

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "INDEX\tVARIANT\tMEMORY\tITERATIONS\tAVAILABLE")
			for _, info := range infos {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%d KiB\t%d\t%v\n", info.Index, info.Name, info.Memory/1024, info.Iterations, info.Available)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the table as JSON")
	return cmd
}
