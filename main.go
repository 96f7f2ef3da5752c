package main

import "github.com/blogem/useradmin/cmd"

func main() {
	cmd.Execute()
}
