package commands

import (
	"fmt"
	"reflect"
	"text/tabwriter"

	"shelf/internal/infra/persistence/model"

	"github.com/spf13/cobra"
	"gorm.io/gorm/schema"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models and their tables in migration order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(cmd)
	},
}

func runModels(cmd *cobra.Command) error {
	naming := schema.NamingStrategy{}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tTABLE")
	for _, m := range model.All() {
		name := reflect.Indirect(reflect.ValueOf(m)).Type().Name()

		table := naming.TableName(name)
		if tabler, ok := m.(schema.Tabler); ok {
			table = tabler.TableName()
		}

		fmt.Fprintf(w, "%s\t%s\n", name, table)
	}

	return w.Flush()
}
