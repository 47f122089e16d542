// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/containers/queue"
)

func newQueueCmd(cfg *config) *cobra.Command {
	var ring bool
	cmd := &cobra.Command{
		Use:   "queue item...",
		Short: "Enqueue every item then dequeue them all, printing in FIFO order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.options()
			if err != nil {
				return err
			}

			type fifo interface {
				Enqueue(string)
				Dequeue() (string, error)
				IsEmpty() bool
				Cap() int
			}
			var q fifo
			if ring {
				q, err = queue.NewRing[string](cfg.capacity, opts...)
			} else {
				q, err = queue.New[string](cfg.capacity, opts...)
			}
			if err != nil {
				return err
			}

			for _, a := range args {
				q.Enqueue(a)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "capacity: %d\n", q.Cap())
			for !q.IsEmpty() {
				x, err := q.Dequeue()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, x)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ring, "ring", false, "use the modulo-indexed ring buffer")
	return cmd
}
