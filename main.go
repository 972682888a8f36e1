// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/doclint/cmd/doclint"

func main() {
	cmd.Execute()
}
