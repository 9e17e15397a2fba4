package main

import "github.com/KaramelBytes/exohab-cli/cmd"

func main() {
	cmd.Execute()
}
