// Command haywan scaffolds a Next.js project with optional next-intl and
// shadcn/ui setup.
package main

import (
	"os"

	"github.com/haywan-uz/haywan-frontend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
