package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/apigrate/sortly/sortly"
)

var (
	// Command flags
	listPage     int
	listPerPage  int
	listFolderID int
	listRecent   bool
	createNotes  string
	createFolder int
	moveQuantity int
	moveToFolder int
	searchType   string
)

// itemsCmd represents the items command group
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage Sortly items and folders",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	RunE:  runItemsList,
}

var itemsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsGet,
}

var itemsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsCreate,
}

var itemsMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move an item into a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsMove,
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsDelete,
}

var itemsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items server-side",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsSearch,
}

func init() {
	itemsListCmd.Flags().IntVar(&listPage, "page", 0, "page number")
	itemsListCmd.Flags().IntVar(&listPerPage, "per-page", 0, "items per page")
	itemsListCmd.Flags().IntVar(&listFolderID, "folder", 0, "restrict to a folder id")
	itemsListCmd.Flags().BoolVar(&listRecent, "recent", false, "list recently updated items")

	itemsCreateCmd.Flags().StringVar(&createNotes, "notes", "", "item notes")
	itemsCreateCmd.Flags().IntVar(&createFolder, "folder", 0, "parent folder id")

	itemsMoveCmd.Flags().IntVar(&moveQuantity, "quantity", 0, "number of units to move")
	itemsMoveCmd.Flags().IntVar(&moveToFolder, "to-folder", 0, "destination folder id")
	itemsMoveCmd.MarkFlagRequired("to-folder")

	itemsSearchCmd.Flags().StringVar(&searchType, "type", "", "restrict to item type (item or folder)")

	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsGetCmd)
	itemsCmd.AddCommand(itemsCreateCmd)
	itemsCmd.AddCommand(itemsMoveCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)
	itemsCmd.AddCommand(itemsSearchCmd)
}

func runItemsList(cmd *cobra.Command, args []string) error {
	opts := sortly.ListOptions{Page: listPage, PerPage: listPerPage}
	if listFolderID > 0 {
		opts.FolderID = &listFolderID
	}

	ctx := context.Background()
	var items []sortly.Item
	var err error
	if listRecent {
		items, err = client.RecentItems(ctx, opts)
	} else {
		items, err = client.ListItems(ctx, opts)
	}
	if err != nil {
		return err
	}

	renderItems(items)
	logRateLimit()
	return nil
}

func runItemsGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	item, err := client.FetchItem(context.Background(), id)
	if err != nil {
		return err
	}
	if item == nil {
		fmt.Printf("Item %d not found.\n", id)
		return nil
	}

	renderItems([]sortly.Item{*item})
	return nil
}

func runItemsCreate(cmd *cobra.Command, args []string) error {
	item := sortly.Item{
		Name:  args[0],
		Notes: createNotes,
	}
	if createFolder > 0 {
		item.ParentID = &createFolder
	}

	created, err := client.CreateItem(context.Background(), item)
	if err != nil {
		return err
	}

	fmt.Printf("Created item %d (%s).\n", created.ID, created.Name)
	return nil
}

func runItemsMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if _, err := client.MoveItem(context.Background(), id, moveQuantity, moveToFolder); err != nil {
		return err
	}

	fmt.Printf("Moved item %d into folder %d.\n", id, moveToFolder)
	return nil
}

func runItemsDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := client.DeleteItem(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Deleted item %d.\n", id)
	return nil
}

func runItemsSearch(cmd *cobra.Command, args []string) error {
	query := sortly.SearchQuery{
		Query:    args[0],
		ItemType: searchType,
	}

	items, err := client.SearchItems(context.Background(), query)
	if err != nil {
		return err
	}

	renderItems(items)
	return nil
}

// renderItems prints items as a table.
func renderItems(items []sortly.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Quantity", "Folder", "Notes"})

	for _, item := range items {
		quantity := ""
		if item.Quantity != nil {
			quantity = strconv.FormatFloat(*item.Quantity, 'f', -1, 64)
		}
		folder := ""
		if item.ParentID != nil {
			folder = strconv.Itoa(*item.ParentID)
		}
		t.AppendRow(table.Row{item.ID, item.Name, item.Type, quantity, folder, item.Notes})
	}

	t.Render()
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}

// logRateLimit reports the remaining request quota after a call.
func logRateLimit() {
	rate := client.RateLimit()
	if rate.Max == 0 {
		return
	}
	logger.Debug().
		Int("remaining", rate.Remaining).
		Int("max", rate.Max).
		Int("reset_seconds", rate.Reset).
		Str("request_id", rate.RequestID).
		Msg("Rate limit status")
}
