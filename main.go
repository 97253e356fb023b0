package main

import (
	"noteremote/cmd"

	_ "noteremote/internal/platform/win"
)

func main() {
	cmd.Execute()
}
