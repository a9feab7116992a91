package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	_ "github.com/vango-dev/vbind/pkg/attr"
	_ "github.com/vango-dev/vbind/pkg/css"
	"github.com/vango-dev/vbind/pkg/key"
)

func keysCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List registered attribute and style keys",
		Long: `List every interned key with its kind and value type.

Examples:
  vbind keys
  vbind keys --kind=style`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter key.Kind
			switch kind {
			case "":
			case "attribute":
				filter = key.KindAttribute
			case "style":
				filter = key.KindStyle
			default:
				return fmt.Errorf("unknown kind %q (use attribute or style)", kind)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tNAME\tTYPE")
			for _, k := range key.Keys() {
				if filter != 0 && k.Kind != filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", k.Kind, k.Name, k.Type)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d attributes, %d style properties\n", key.Count(key.KindAttribute), key.Count(key.KindStyle))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only list keys of this kind (attribute or style)")

	return cmd
}
