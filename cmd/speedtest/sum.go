// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	cryptoprotect "cryptobase/cryptoProtect"
	"cryptobase/cryptoProtect/digest"
	"cryptobase/defErr"
	"cryptobase/utils"

	"github.com/spf13/cobra"
)

var sumAlgorithm string

var sumCmd = &cobra.Command{
	Use:   "sum FILE...",
	Short: "Print file digests, one line per file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		choice, err := cryptoprotect.ParseDigestChoice(sumAlgorithm)
		if err != nil {
			return err
		}
		s, err := cryptoprotect.NewStreamHash(choice)
		if err != nil {
			return err
		}
		defer s.Dispose()
		return sumFiles(cmd.Context(), cmd.OutOrStdout(), s, args)
	},
}

func init() {
	sumCmd.Flags().StringVarP(&sumAlgorithm, "algorithm", "a", "sha256", "digest algorithm")
}

// one stream serves every file, finalize resets it in between.
func sumFiles(ctx context.Context, w io.Writer, s digest.StreamHash, paths []string) error {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		sum, err := digest.ComputeHash(ctx, s, f)
		f.Close()
		if err != nil {
			return defErr.DescribeThenConcat(p, err)
		}
		utils.AddTag2HexHeader(sum, p)
		fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum), p)
	}
	return nil
}
