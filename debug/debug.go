package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Render   bool
	Write    bool
	Template bool
	Build    bool
	Compile  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Render = boolEnv("TEXCORE_DEBUG_RENDER")
	d.Write = boolEnv("TEXCORE_DEBUG_WRITE")
	d.Template = boolEnv("TEXCORE_DEBUG_TEMPLATE")
	d.Build = boolEnv("TEXCORE_DEBUG_BUILD")
	d.Compile = boolEnv("TEXCORE_DEBUG_COMPILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Render() bool {
	return d.Render
}
func Write() bool {
	return d.Write
}
func Template() bool {
	return d.Template
}
func Build() bool {
	return d.Build
}
func Compile() bool {
	return d.Compile
}
