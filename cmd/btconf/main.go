// Btconf inspects and edits INI configuration files such as the Bluetooth
// stack's bt_config.conf, and maintains the checksum file stored next to
// them.
//
// Usage:
//
//	btconf [command] [flags]
//
// See 'btconf --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
