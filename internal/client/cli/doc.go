package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/mdkeeper/internal/models"
)

// contentFlags источники текста документа
type contentFlags struct {
	content string
	file    string
	stdin   bool
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "document text")
	cmd.Flags().StringVar(&f.file, "file", "", "read document text from file")
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "read document text from stdin")
	cmd.MarkFlagsMutuallyExclusive("content", "file", "stdin")
}

func (f *contentFlags) set() bool {
	return f.content != "" || f.file != "" || f.stdin
}

func (c *Cli) readContent(f contentFlags) (string, error) {
	switch {
	case f.file != "":
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", f.file, err)
		}
		return string(raw), nil
	case f.stdin:
		text, err := c.io.ReadAll()
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return text, nil
	default:
		return f.content, nil
	}
}

func (c *Cli) docCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc",
		Aliases: []string{"docs"},
		Short:   "Manage markdown documents",
	}
	cmd.AddCommand(
		c.docNewCmd(),
		c.docEditCmd(),
		c.docShowCmd(),
		c.docMoveCmd(),
		c.docRemoveCmd(),
		c.docListCmd(),
	)
	return cmd
}

func (c *Cli) docNewCmd() *cobra.Command {
	var (
		src    contentFlags
		folder string
	)
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := c.readContent(src)
			if err != nil {
				return err
			}
			return c.runDocNew(cmd.Context(), args[0], folder, content)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&folder, "folder", "", "parent folder (id, id prefix or name)")
	return cmd
}

func (c *Cli) docEditCmd() *cobra.Command {
	var (
		src  contentFlags
		name string
	)
	cmd := &cobra.Command{
		Use:   "edit <document>",
		Short: "Replace document text and/or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !src.set() && name == "" {
				return fmt.Errorf("nothing to change: use --content, --file, --stdin or --title")
			}
			var content *string
			if src.set() {
				text, err := c.readContent(src)
				if err != nil {
					return err
				}
				content = &text
			}
			return c.runDocEdit(cmd.Context(), args[0], name, content)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&name, "title", "", "new document title")
	return cmd
}

func (c *Cli) docShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document>",
		Short: "Print a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDocShow(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) docMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <document> <folder|/>",
		Short: "Move a document to another folder, '/' for the root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMove(cmd.Context(), models.EntityTypeDocument, args[0], args[1])
		},
	}
}

func (c *Cli) docRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <document>",
		Aliases: []string{"delete"},
		Short:   "Delete a document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd.Context(), models.EntityTypeDocument, args[0])
		},
	}
}

func (c *Cli) docListCmd() *cobra.Command {
	var (
		folder    string
		recursive bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDocList(cmd.Context(), folder, recursive)
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "list only this folder")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "include subfolders")
	return cmd
}

func (c *Cli) runDocNew(ctx context.Context, title, folderRef, content string) error {
	parentID, err := c.folderID(ctx, folderRef)
	if err != nil {
		return err
	}

	doc, err := c.data.CreateDocument(ctx, title, parentID, content)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	c.io.Printf("✓ Document created: %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func (c *Cli) runDocEdit(ctx context.Context, ref, title string, content *string) error {
	doc, err := c.data.Resolve(ctx, models.EntityTypeDocument, ref)
	if err != nil {
		return err
	}

	if content != nil {
		if doc, err = c.data.UpdateContent(ctx, doc.ID, *content); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
	}
	if title != "" {
		if doc, err = c.data.Rename(ctx, doc.Key(), title); err != nil {
			return fmt.Errorf("failed to rename document: %w", err)
		}
	}

	c.io.Printf("✓ Document updated: %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func (c *Cli) runDocShow(ctx context.Context, ref string) error {
	doc, err := c.data.Resolve(ctx, models.EntityTypeDocument, ref)
	if err != nil {
		return err
	}

	c.io.Printf("# %s\n", doc.Name)
	c.io.Printf("ID:      %s\n", doc.ID)
	c.io.Printf("Version: %d\n", doc.SyncVersion)
	c.io.Printf("Updated: %s\n", doc.UpdatedAt.Format(time.RFC3339))
	if doc.HasUnsyncedChanges() {
		c.io.Println("Status:  not synced")
	}
	c.io.Println()
	if _, err := c.io.Write([]byte(doc.Content)); err != nil {
		return err
	}
	c.io.Println()
	return nil
}

func (c *Cli) runMove(ctx context.Context, typ models.EntityType, ref, folderRef string) error {
	e, err := c.data.Resolve(ctx, typ, ref)
	if err != nil {
		return err
	}
	if folderRef == "/" {
		folderRef = ""
	}
	parentID, err := c.folderID(ctx, folderRef)
	if err != nil {
		return err
	}

	if _, err := c.data.Move(ctx, e.Key(), parentID); err != nil {
		return fmt.Errorf("failed to move %s: %w", typ, err)
	}

	c.io.Printf("✓ Moved %s %q\n", typ, e.Name)
	return nil
}

func (c *Cli) runRemove(ctx context.Context, typ models.EntityType, ref string) error {
	e, err := c.data.Resolve(ctx, typ, ref)
	if err != nil {
		return err
	}
	if err := c.data.Delete(ctx, e.Key()); err != nil {
		return fmt.Errorf("failed to delete %s: %w", typ, err)
	}

	c.io.Printf("✓ Deleted %s %q\n", typ, e.Name)
	return nil
}

func (c *Cli) runDocList(ctx context.Context, folderRef string, recursive bool) error {
	parentID, err := c.folderID(ctx, folderRef)
	if err != nil {
		return err
	}

	docs, err := c.data.ListDocuments(ctx, parentID, recursive || folderRef == "")
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		c.io.Println("No documents found.")
		c.io.Println("Use 'mdkeeper doc new <title>' to create one.")
		return nil
	}

	c.io.Printf("Found %d document(s):\n", len(docs))
	for _, doc := range docs {
		mark := " "
		if doc.HasUnsyncedChanges() {
			mark = "*"
		}
		c.io.Printf("%s %s  %-40s  %s\n", mark, shortID(doc.ID), doc.Name, doc.UpdatedAt.Format(time.DateTime))
	}
	return nil
}

// folderID разрешает ссылку на папку, пустая ссылка - корень
func (c *Cli) folderID(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	folder, err := c.data.Resolve(ctx, models.EntityTypeFolder, ref)
	if err != nil {
		return "", err
	}
	return folder.ID, nil
}

// shortID первые 8 символов id для вывода
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
