package main

import "github.com/josephlewis42/sgrep/cmd"

func main() {
	cmd.Execute()
}
