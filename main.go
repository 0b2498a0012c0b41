// Command rowpilot replays recorded mouse and keyboard steps once per row of
// a spreadsheet.
package main

import "rowpilot/internal/cli"

func main() {
	cli.Execute()
}
