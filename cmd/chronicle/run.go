package main

import (
	"bufio"
	"fmt"

	"github.com/chronicle-sim/chronicle/internal/core/arena"
	"github.com/chronicle-sim/chronicle/internal/spatial"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the simulation with commands read from stdin",
		Long: `Reads one command per line and prints the resulting snapshot as YAML.

Commands:
  tick                    extract a snapshot without changing anything
  end                     end the turn
  active <entity-tag>     make an entity the active agent
  select <entity-tag>     select an entity
  select site <site-tag>  select a site
  select global|none      select the turn counter, or clear the selection
  act <n>                 perform the n-th available action
  quit                    stop`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}
	cmd.Flags().Bool("no-map", false, "omit map items and edges from the output")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	s, cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	noMap, _ := cmd.Flags().GetBool("no-map")
	viewport := spatial.Rect(cfg.View.MinX, cfg.View.MinY, cfg.View.MaxX, cfg.View.MaxY)
	resolver := stateResolver{s.State()}
	a := arena.New()
	out := cmd.OutOrStdout()
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		c, err := parseCommand(sc.Text())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		if c.quit {
			break
		}
		if c.empty {
			continue
		}
		req, err := c.request(resolver)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		req.View.Enabled = true
		req.View.Viewport = viewport

		a.Reset()
		snap := s.Tick(req, a)
		if noMap {
			snap.MapItems, snap.MapEdges = nil, nil
		}
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		log.Debug("tick", zap.Int("turn", s.State().Turn), zap.Int("arena_allocs", a.Allocs()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
