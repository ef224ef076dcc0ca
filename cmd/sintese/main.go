package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "sintese",
		Short:         "Gera sínteses factuais de processos judiciais a partir de PDFs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSynthesizeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
