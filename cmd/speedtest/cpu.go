// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"fmt"
	"runtime"

	"cryptobase/utils"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var cpuCmd = &cobra.Command{
	Use:   "cpu",
	Short: "List instruction-set extensions used by hash primitives",
	RunE: func(cmd *cobra.Command, args []string) error {
		data := pterm.TableData{{"feature", "present"}}
		for _, f := range utils.CPUFeatures() {
			data = append(data, []string{f.Name, fmt.Sprint(f.Present)})
		}
		pterm.Info.Printfln("GOARCH=%s", runtime.GOARCH)
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}
