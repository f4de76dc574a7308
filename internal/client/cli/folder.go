package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/mdkeeper/internal/models"
)

func (c *Cli) folderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folder",
		Aliases: []string{"folders"},
		Short:   "Manage folders",
	}
	cmd.AddCommand(
		c.folderNewCmd(),
		c.folderRemoveCmd(),
		c.folderListCmd(),
		c.folderRenameCmd(),
		c.folderColorCmd(),
		c.folderMoveCmd(),
	)
	return cmd
}

func (c *Cli) folderNewCmd() *cobra.Command {
	var parent, color string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFolderNew(cmd.Context(), args[0], parent, color)
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent folder")
	cmd.Flags().StringVar(&color, "color", "", "folder color: #rrggbb or a palette name")
	return cmd
}

func (c *Cli) folderRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <folder>",
		Aliases: []string{"delete"},
		Short:   "Delete a folder with everything inside it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd.Context(), models.EntityTypeFolder, args[0])
		},
	}
}

func (c *Cli) folderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the folder tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runFolderList(cmd.Context())
		},
	}
}

func (c *Cli) folderRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <folder> <name>",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFolderRename(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *Cli) folderColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <folder> <color>",
		Short: "Set folder color, empty string clears it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFolderColor(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *Cli) folderMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <folder> <parent|/>",
		Short: "Move a folder under another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMove(cmd.Context(), models.EntityTypeFolder, args[0], args[1])
		},
	}
}

func (c *Cli) runFolderNew(ctx context.Context, name, parentRef, color string) error {
	parentID, err := c.folderID(ctx, parentRef)
	if err != nil {
		return err
	}

	folder, err := c.data.CreateFolder(ctx, name, parentID, color)
	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	c.io.Printf("✓ Folder created: %s (%s)\n", folder.Name, folder.ID)
	return nil
}

func (c *Cli) runFolderRename(ctx context.Context, ref, name string) error {
	folder, err := c.data.Resolve(ctx, models.EntityTypeFolder, ref)
	if err != nil {
		return err
	}
	renamed, err := c.data.Rename(ctx, folder.Key(), name)
	if err != nil {
		return fmt.Errorf("failed to rename folder: %w", err)
	}
	c.io.Printf("✓ Folder renamed: %s\n", renamed.Name)
	return nil
}

func (c *Cli) runFolderColor(ctx context.Context, ref, color string) error {
	folder, err := c.data.Resolve(ctx, models.EntityTypeFolder, ref)
	if err != nil {
		return err
	}
	if _, err := c.data.SetColor(ctx, folder.ID, color); err != nil {
		return fmt.Errorf("failed to set color: %w", err)
	}
	c.io.Printf("✓ Folder %q color set\n", folder.Name)
	return nil
}

func (c *Cli) runFolderList(ctx context.Context) error {
	folders, err := c.data.ListFolders(ctx)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		c.io.Println("No folders found.")
		return nil
	}

	children := make(map[string][]*models.Entity)
	for _, f := range folders {
		children[f.ParentID] = append(children[f.ParentID], f)
	}
	for _, list := range children {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}

	// папки, чей родитель не найден, показываем в корне
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}
	for parentID, list := range children {
		if parentID != "" && !known[parentID] {
			children[""] = append(children[""], list...)
		}
	}

	var walk func(parentID string, depth int)
	walk = func(parentID string, depth int) {
		for _, f := range children[parentID] {
			line := strings.Repeat("  ", depth) + f.Name
			if f.Color != "" {
				line += " [" + f.Color + "]"
			}
			c.io.Printf("%s  %s\n", shortID(f.ID), line)
			walk(f.ID, depth+1)
		}
	}
	walk("", 0)
	return nil
}
