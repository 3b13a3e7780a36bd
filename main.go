package main

import "github.com/jdlms/donut-shop/cmd"

func main() {
	cmd.Execute()
}
