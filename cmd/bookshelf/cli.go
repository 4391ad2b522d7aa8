package main

import (
	"context"
	"io"

	"github.com/fwojciec/bookshelf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Books     bookshelf.BookService
	Exporters map[bookshelf.Format]bookshelf.Exporter
	Storage   *Storage
}

// Storage describes where the collection is kept.
type Storage struct {
	Backend    string
	Location   string
	Key        string
	Persistent bool

	// Inspector reports on the stored snapshot. Nil when the backend
	// cannot be inspected or failed to open.
	Inspector bookshelf.BlobInspector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"BOOKSHELF_DB" default:"${db}" help:"Database path (the file backend stores blobs next to it)"`
	Backend string `env:"BOOKSHELF_BACKEND" enum:"sqlite,file,memory" default:"sqlite" help:"Storage backend (sqlite, file, memory)"`
	Key     string `env:"BOOKSHELF_KEY" default:"${key}" help:"Storage key the collection is saved under"`
	Verbose bool   `short:"v" help:"Log storage activity to stderr"`

	Add    AddCmd    `cmd:"" help:"Add a book to the shelf"`
	List   ListCmd   `cmd:"" help:"List books on the shelf"`
	Show   ShowCmd   `cmd:"" help:"Show a single book"`
	Edit   EditCmd   `cmd:"" help:"Replace the details of a book"`
	Done   DoneCmd   `cmd:"" help:"Mark a book as read"`
	Undone UndoneCmd `cmd:"" help:"Mark a book as not yet read"`
	Delete DeleteCmd `cmd:"" help:"Remove a book from the shelf"`
	Search SearchCmd `cmd:"" help:"Find books by exact title, ignoring case"`
	Export ExportCmd `cmd:"" help:"Write the shelf in another format"`
	Status StatusCmd `cmd:"" help:"Show where the shelf is stored"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title    string `arg:"" help:"Book title"`
	Author   string `arg:"" help:"Book author"`
	Year     int    `arg:"" help:"Publication year"`
	Complete bool   `short:"c" help:"Mark the book as already read"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Read   bool `xor:"status" help:"Only show books that have been read"`
	Unread bool `xor:"status" help:"Only show books not yet read"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Book ID"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID       string `arg:"" help:"Book ID"`
	Title    string `arg:"" help:"Book title"`
	Author   string `arg:"" help:"Book author"`
	Year     int    `arg:"" help:"Publication year"`
	Complete bool   `short:"c" help:"Mark the book as read"`
}

// DoneCmd is the "done" subcommand.
type DoneCmd struct {
	ID string `arg:"" help:"Book ID"`
}

// UndoneCmd is the "undone" subcommand.
type UndoneCmd struct {
	ID string `arg:"" help:"Book ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Book ID"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Title to look for"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" enum:"json,yaml,xml,html,markdown" default:"json" help:"Output format (json, yaml, xml, html, markdown)"`
	Output string `short:"o" type:"path" help:"Write to file instead of stdout"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
