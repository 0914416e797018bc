package main

import (
	"github.com/yhao3/hinto/cmd"

	_ "github.com/yhao3/hinto/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
