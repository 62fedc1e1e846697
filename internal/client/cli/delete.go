package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// DeleteEntry prompts for an entry id, asks for confirmation, and removes
// the entry. The local collection drops the entry directly on success; a
// declined confirmation sends nothing.
func (a *App) DeleteEntry(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first")
		return nil
	}

	raw, err := GetSimpleText(a.reader, "Enter entry id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", raw)
		return nil
	}

	ok, err := Confirm(a.reader, "Are you sure you want to delete this entry?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.entries.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete entry: %s", err.Error())
		return err
	}

	fmt.Println("Entry deleted")
	return nil
}

// Refresh reloads entries and stats from the server on demand.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first")
		return nil
	}
	if err := a.entries.LoadAll(ctx); err != nil {
		log.Printf("Failed to load data: %s", err.Error())
		return err
	}
	fmt.Println("Refreshed")
	return nil
}
