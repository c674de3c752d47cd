package cli

import (
	"fmt"
	"path/filepath"
)

type BackupCmd struct {
	Create BackupCreateCmd `cmd:"" default:"1" help:"Snapshot the database."`
	List   BackupListCmd   `cmd:"" help:"List existing snapshots."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path, err := ctx.Backups.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	backups, err := ctx.Backups.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet.")
		return nil
	}
	for _, info := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", info.Created.Format("2006-01-02 15:04:05"), info.Size, filepath.Base(info.Path))
	}
	return nil
}
