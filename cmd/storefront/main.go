// cmd/storefront/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/your-org/storefront/internal/interfaces/cli"
)

func main() {
	cmd := cli.NewRootCommand(cli.DefaultApp)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
