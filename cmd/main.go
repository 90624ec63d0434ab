package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/tokenreg/cmd/tokenreg"
)

func main() {
	rootCmd := tokenreg.BuildTokenregCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
