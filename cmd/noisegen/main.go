package main

import "github.com/MeKo-Tech/noisegen/internal/cmd"

func main() {
	cmd.Execute()
}
