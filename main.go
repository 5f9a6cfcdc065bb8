// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/emacsmirror/sq/cmd/sqview"

func main() {
	cmd.Execute()
}
