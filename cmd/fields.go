package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// fieldsCmd represents the fields command group
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Inspect custom field definitions",
}

var fieldsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom fields",
	RunE:  runFieldsList,
}

var fieldsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single custom field",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsGet,
}

func init() {
	fieldsCmd.AddCommand(fieldsListCmd)
	fieldsCmd.AddCommand(fieldsGetCmd)
}

func runFieldsList(cmd *cobra.Command, args []string) error {
	fields, err := client.ListCustomFields(context.Background())
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		fmt.Println("No custom fields defined.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Applies To"})
	for _, field := range fields {
		t.AppendRow(table.Row{field.ID, field.Name, field.Type, strings.Join(field.AppliesTo, ", ")})
	}
	t.Render()

	return nil
}

func runFieldsGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	field, err := client.FetchCustomField(context.Background(), id)
	if err != nil {
		return err
	}
	if field == nil {
		fmt.Printf("Custom field %d not found.\n", id)
		return nil
	}

	fmt.Printf("ID:         %d\n", field.ID)
	fmt.Printf("Name:       %s\n", field.Name)
	fmt.Printf("Type:       %s\n", field.Type)
	fmt.Printf("Applies To: %s\n", strings.Join(field.AppliesTo, ", "))
	return nil
}
