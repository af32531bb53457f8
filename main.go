package main

import (
	"fmt"

	"github.com/webitel/cel-engine/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Println(err.Error())
		return
	}
}
