// SPDX-License-Identifier: MPL-2.0

package main

import cmd "bindery/cmd/bindery"

func main() {
	cmd.Execute()
}
