package main

import (
	"fmt"
	"os"
)

// @title           Ecoleta API
// @version         1.0
// @description     Pontos de coleta de resíduos recicláveis.
// @host            localhost:3333
// @BasePath        /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
