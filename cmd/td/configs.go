package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	treedelta "github.com/treedelta/go-treedelta"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='render with color'"`
	Marker string `cli:"name=marker desc='suffix for changed lines (default (*))'"`
	Indent string `cli:"name=indent desc='indentation unit (default two spaces)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) renderOpts(w io.Writer) []treedelta.RenderOption {
	res := []treedelta.RenderOption{}
	if cfg.Marker != "" {
		res = append(res, treedelta.RenderMarker(cfg.Marker))
	}
	if cfg.Indent != "" {
		res = append(res, treedelta.RenderIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, treedelta.RenderColors(treedelta.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, treedelta.RenderColors(treedelta.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Prune string `cli:"name=prune desc='drop subtrees failing this expression'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Project bool   `cli:"name=p desc='render the projected tree instead of a summary'"`
	Prune   string `cli:"name=prune desc='drop subtrees failing this expression'"`
	Patch   string `cli:"name=patch desc='json patch file applied to the first document'"`

	Diff *cli.Command
}
