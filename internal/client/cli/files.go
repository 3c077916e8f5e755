package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/filehost/internal/client/models"
	"github.com/dmitrijs2005/filehost/internal/filex"
)

// readUpload is a test seam for filex.ReadUpload.
var readUpload = filex.ReadUpload

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return report(errNotLoggedIn)
	}

	files, err := a.api.ListFiles(ctx)
	if err != nil {
		return report(err)
	}

	if len(files) == 0 {
		printlnFn("No files")
		return nil
	}
	printlnFn("ID\tNAME\tSIZE\tUPLOADED")
	for _, f := range files {
		printlnFn(f.String())
	}
	return nil
}

func (a *App) Upload(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		return report(errNotLoggedIn)
	}

	up, err := readUpload(path)
	if err != nil {
		return report(err)
	}

	f, err := a.api.Upload(ctx, up)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Uploaded %s as #%d (%s)", f.Name, f.ID, models.HumanSize(f.Size)))
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	if !a.isLoggedIn() {
		return report(errNotLoggedIn)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return report(fmt.Errorf("invalid file id %q", rawID))
	}

	if err := a.api.DeleteFile(ctx, id); err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Deleted #%d", id))
	return nil
}

func (a *App) Metrics(ctx context.Context) error {
	m, err := a.api.Metrics(ctx)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("CPU:  %.1f%% (%d cores)", m.CPU.CurrentLoad, len(m.CPU.CPUs)))
	printlnFn(fmt.Sprintf("Mem:  %s used of %s", models.HumanSize(int64(m.Mem.Used)), models.HumanSize(int64(m.Mem.Total))))
	if m.Temp.Main != nil {
		printlnFn(fmt.Sprintf("Temp: %.1f°C", *m.Temp.Main))
	} else {
		printlnFn("Temp: n/a")
	}
	return nil
}
