package treedelta

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps line roles to colorizers for projection output.
type Colors struct {
	Changed   func(a ...any) string
	Unchanged func(a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Changed:   color.New(color.FgGreen).SprintFunc(),
		Unchanged: colorDefault,
	}
}

func colorDefault(a ...any) string { return fmt.Sprint(a...) }

func (c *Colors) Line(changed bool, s string) string {
	if changed {
		return c.Changed(s)
	}
	return c.Unchanged(s)
}
