// bridgectl is the command-line client for API Bridge.
package main

import "github.com/apibridge/client-go/internal/cli"

func main() {
	cli.Execute()
}
