// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava-labs/containers/fibonacci"
)

func newFibCmd() *cobra.Command {
	var wide bool
	cmd := &cobra.Command{
		Use:   "fib [count]",
		Short: "Print Fibonacci numbers until the integer type overflows, or count of them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := -1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				limit = n
			}

			out := cmd.OutOrStdout()
			i := 0
			if wide {
				for x := range fibonacci.Sequence256() {
					if i == limit {
						break
					}
					fmt.Fprintf(out, "%d\t%s\n", i, x.Dec())
					i++
				}
				return nil
			}
			for x := range fibonacci.Sequence[int64]() {
				if i == limit {
					break
				}
				fmt.Fprintf(out, "%d\t%d\n", i, x)
				i++
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&wide, "wide", false, "use 256-bit unsigned integers instead of int64")
	return cmd
}
