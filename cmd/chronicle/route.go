package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <from-site> <to-site>",
		Short: "Print the shortest path between two sites",
		Args:  cobra.ExactArgs(2),
		RunE:  runRoute,
	}
}

func runRoute(cmd *cobra.Command, args []string) error {
	s, _, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	path, cost, err := s.Route(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\ncost: %.3f\n", strings.Join(path, " -> "), cost)
	return nil
}
