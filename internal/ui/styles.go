package ui

import "github.com/pterm/pterm"

// Separator prints a green divider line between command output blocks.
func Separator() {
	pterm.Println(pterm.Green("---------------------------------------------------------"))
}
