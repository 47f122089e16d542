// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/containers/set"
)

type word string

func (w word) Equal(v word) bool { return w == v }

func newSetCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "set a,b,c b,c,d",
		Short: "Print the set-algebra views of two comma-separated lists.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}

			var ops [2]*set.Linear[word]
			for i, arg := range args {
				s, err := set.New[word](cfg.capacity, opts...)
				if err != nil {
					return err
				}
				for _, w := range strings.Split(arg, ",") {
					s.Add(word(w))
				}
				ops[i] = s
			}
			a, b := ops[0], ops[1]

			out := cmd.OutOrStdout()
			for _, v := range []struct {
				name string
				fn   func(iter.Seq[word]) (iter.Seq[word], error)
			}{
				{"union", a.Union},
				{"intersect", a.Intersect},
				{"except", a.Except},
			} {
				seq, err := v.fn(b.All())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %v\n", v.name, slices.Collect(seq))
			}

			overlaps, err := a.Overlaps(b.All())
			if err != nil {
				return err
			}
			equal, err := a.SetEquals(b.All())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "overlaps: %t\nequal: %t\n", overlaps, equal)
			return nil
		},
	}
}
