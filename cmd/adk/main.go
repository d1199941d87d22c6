package main

import (
	"context"

	_ "github.com/adk-format/adk/internal/shapes"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
