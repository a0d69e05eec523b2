package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treedelta/go-treedelta/tree"
	"github.com/treedelta/go-treedelta/yamltree"
)

func getTreeFile(cc *cli.Context, path string) (*tree.Node[string], error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return yamltree.Parse(d)
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}
