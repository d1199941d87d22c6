package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Register bool
	Encode   bool
	Decode   bool
	Parse    bool
	Patch    bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Register = boolEnv("ADK_DEBUG_REGISTER")
	d.Encode = boolEnv("ADK_DEBUG_ENCODE")
	d.Decode = boolEnv("ADK_DEBUG_DECODE")
	d.Parse = boolEnv("ADK_DEBUG_PARSE")
	d.Patch = boolEnv("ADK_DEBUG_PATCH")
	d.Eval = boolEnv("ADK_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Register() bool {
	return d.Register
}
func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
