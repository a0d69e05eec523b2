package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Patch  bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("TD_DEBUG_DIFF")
	d.Patch = boolEnv("TD_DEBUG_PATCH")
	d.Filter = boolEnv("TD_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Filter() bool {
	return d.Filter
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
