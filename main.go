package main

import "github.com/KaramelBytes/likelens/cmd"

func main() {
	cmd.Execute()
}
