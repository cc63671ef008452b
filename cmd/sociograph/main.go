// SPDX-License-Identifier: MIT

// Command sociograph analyses a personal network described in a roster file.
//
//	sociograph sample > roster.yaml
//	sociograph report roster.yaml --format json
//	sociograph profiles
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
