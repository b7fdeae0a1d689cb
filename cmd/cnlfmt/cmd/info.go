package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edakit/cnlfmt/pkg/allegro"
)

var (
	infoNets   int
	infoRefdes string
	infoPin    string
)

var infoCmd = &cobra.Command{
	Use:   "info <netlist>",
	Short: "Show netlist summary and connectivity queries",
	Long: `Info parses a netlist and prints its header summary and net count, plus the
first nets of the table. Optional flags answer connectivity queries:

  --refdes R1   # Every net:pin occurrence of refdes R1
  --pin R1:3    # Pin name and owning net for pin 3 of R1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := allegro.ParseFile(args[0], allegro.Options{Logger: newLogger()})
		if err != nil {
			return err
		}

		fmt.Println(doc.Info())
		fmt.Printf("Total nets: %d\n", doc.Len())

		n := infoNets
		if n > doc.Len() {
			n = doc.Len()
		}
		for i := 0; i < n; i++ {
			s, err := doc.NetString(i)
			if err != nil {
				return err
			}
			fmt.Printf("  %s\n", s)
		}

		if infoRefdes != "" {
			s, ok := doc.TraceString(infoRefdes)
			if !ok {
				return fmt.Errorf("refdes %q not found in %s", infoRefdes, args[0])
			}
			fmt.Println(s)
		}

		if infoPin != "" {
			refdes, pin, ok := strings.Cut(infoPin, ":")
			if !ok {
				return fmt.Errorf("--pin wants REFDES:PIN, got %q", infoPin)
			}
			if name, ok := doc.PinName(refdes, pin); ok {
				fmt.Printf("pin name: %s\n", name)
			} else {
				fmt.Println("pin name: (not captured)")
			}
			if net, ok := doc.NetNameFor(refdes, pin); ok {
				fmt.Printf("net: %s\n", net)
			} else {
				fmt.Println("net: (not found)")
			}
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().IntVar(&infoNets, "nets", 5, "number of nets to print")
	infoCmd.Flags().StringVar(&infoRefdes, "refdes", "", "trace a reference designator")
	infoCmd.Flags().StringVar(&infoPin, "pin", "", "look up a REFDES:PIN pair")
	rootCmd.AddCommand(infoCmd)
}
