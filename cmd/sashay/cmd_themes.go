package main

import (
	"fmt"
	"io"

	"github.com/sadopc/sashay/internal/ui/theme"
)

func themesCmd(w io.Writer) {
	current := theme.Default().Name
	for _, name := range theme.Names() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}
