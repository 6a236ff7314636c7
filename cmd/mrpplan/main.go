// Command mrpplan runs the time-phased MRP planning engine against a
// scenario directory of CSV input tables.
package main

import "github.com/kestrelworks/mrpplan/internal/interfaces/cli/commands"

func main() {
	commands.Execute()
}
