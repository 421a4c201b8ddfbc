// Command emptrack is an interactive employee-management tool.
package main

import "github.com/mesh-intelligence/emptrack/internal/cli"

func main() {
	cli.Execute()
}
