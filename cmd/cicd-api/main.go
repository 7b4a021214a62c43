package main

import (
	"github.com/NVIDIA/cicd-comparison-api/pkg/cli"
)

func main() {
	cli.Execute()
}
