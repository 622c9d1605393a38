package main

import (
	"github.com/zindanrpg/zindan-go/internal/cli"
)

func main() {
	cli.Execute()
}
