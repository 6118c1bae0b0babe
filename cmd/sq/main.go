package main

import "github.com/jagadeshaidev-lab/solo-leveling-game/cmd/sq/root"

func main() {
	root.Execute()
}
