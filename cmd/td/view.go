package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	treedelta "github.com/treedelta/go-treedelta"
	"github.com/treedelta/go-treedelta/filter"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var pred *filter.Predicate
	if cfg.Prune != "" {
		pred, err = filter.Compile(cfg.Prune)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		root, err := getTreeFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if pred != nil {
			root, err = filter.Prune(root, pred)
			if err != nil {
				return err
			}
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := treedelta.Render(cc.Out, root, nil, cfg.renderOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
