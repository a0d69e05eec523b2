package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	treedelta "github.com/treedelta/go-treedelta"
	"github.com/treedelta/go-treedelta/filter"
	"github.com/treedelta/go-treedelta/yamltree"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	aData, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	if cfg.Patch != "" {
		aData, err = applyJSONPatch(aData, cfg.Patch)
		if err != nil {
			return fmt.Errorf("error applying %s: %w", cfg.Patch, err)
		}
	}
	a, err := yamltree.Parse(aData)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getTreeFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Prune != "" {
		pred, err := filter.Compile(cfg.Prune)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if a, err = filter.Prune(a, pred); err != nil {
			return err
		}
		if b, err = filter.Prune(b, pred); err != nil {
			return err
		}
	}
	ps := treedelta.Diff(a, b)
	if ps.Empty() {
		return nil
	}
	if cfg.Project {
		if err := treedelta.Render(cc.Out, a, ps, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := treedelta.Summary(cc.Out, a, ps); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
