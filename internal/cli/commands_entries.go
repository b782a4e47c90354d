package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/spf13/cobra"
)

// Layouts accepted for --date besides RFC 3339. They are read in local time.
var localDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (c *CLI) addCommand() *cobra.Command {
	var (
		liters, price, total, odometer float64
		date                           string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a fill-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			dateTime, err := parseDateTime(date, c.now)
			if err != nil {
				return err
			}

			data := models.FuelEntryData{
				Liters:        liters,
				PricePerLiter: price,
				TotalCost:     total,
				DateTime:      dateTime,
			}
			if !cmd.Flags().Changed("total") {
				data.TotalCost = roundCents(liters * price)
			}
			if cmd.Flags().Changed("odometer") {
				data.OdometerReading = &odometer
			}

			entry, err := c.adapter.CreateEntry(commandContext(cmd), models.CreateFuelEntryRequest{
				UserID:        session.UserID,
				FuelEntryData: data,
			})
			if err != nil {
				return fmt.Errorf("error creating fuel entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created fuel entry %s\n", entry.ID)
			return renderEntries(cmd.OutOrStdout(), []models.FuelEntry{entry})
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&liters, "liters", "l", 0, "liters filled")
	flags.Float64Var(&price, "price", 0, "price per liter")
	flags.Float64Var(&total, "total", 0, "total paid (defaults to liters x price)")
	flags.Float64Var(&odometer, "odometer", 0, "odometer reading")
	flags.StringVarP(&date, "date", "d", "", "fill-up time, RFC 3339 or YYYY-MM-DD[ HH:MM] (defaults to now)")
	_ = cmd.MarkFlagRequired("liters")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create many fill-ups from a JSON file in one request",
		Long: "import reads either a JSON array of entries or an object with an " +
			"\"entries\" array. The server stores all of them or none.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			entries, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			resp, err := c.adapter.CreateEntries(commandContext(cmd), models.CreateFuelEntriesRequest{
				UserID:  session.UserID,
				Entries: entries,
			})
			if err != nil {
				return fmt.Errorf("error importing fuel entries: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d fuel entries\n", resp.Count)
			return nil
		},
	}
}

func (c *CLI) listCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your fill-ups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			entries, err := c.adapter.ListEntries(commandContext(cmd), session.UserID)
			if err != nil {
				return fmt.Errorf("error listing fuel entries: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fuel entries yet")
				return nil
			}
			return renderEntries(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")

	return cmd
}

func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one fill-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			entry, err := c.adapter.GetEntry(commandContext(cmd), session.UserID, args[0])
			if err != nil {
				return fmt.Errorf("error fetching fuel entry: %w", err)
			}
			return renderEntries(cmd.OutOrStdout(), []models.FuelEntry{entry})
		},
	}
}

func (c *CLI) editCommand() *cobra.Command {
	var (
		liters, price, total, odometer float64
		date                           string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a fill-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			var update models.UpdateFuelEntryRequest
			flags := cmd.Flags()
			if flags.Changed("liters") {
				update.Liters = &liters
			}
			if flags.Changed("price") {
				update.PricePerLiter = &price
			}
			if flags.Changed("total") {
				update.TotalCost = &total
			}
			if flags.Changed("odometer") {
				update.OdometerReading = &odometer
			}
			if flags.Changed("date") {
				dateTime, err := parseDateTime(date, c.now)
				if err != nil {
					return err
				}
				update.DateTime = &dateTime
			}
			if update.IsEmpty() {
				return fmt.Errorf("%w: set at least one of --liters, --price, --total, --odometer or --date", ErrMissingFlag)
			}

			entry, err := c.adapter.UpdateEntry(commandContext(cmd), session.UserID, args[0], update)
			if err != nil {
				return fmt.Errorf("error updating fuel entry: %w", err)
			}
			return renderEntries(cmd.OutOrStdout(), []models.FuelEntry{entry})
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&liters, "liters", "l", 0, "liters filled")
	flags.Float64Var(&price, "price", 0, "price per liter")
	flags.Float64Var(&total, "total", 0, "total paid")
	flags.Float64Var(&odometer, "odometer", 0, "odometer reading")
	flags.StringVarP(&date, "date", "d", "", "fill-up time, RFC 3339 or YYYY-MM-DD[ HH:MM]")

	return cmd
}

// removeCommand deletes one entry directly and several through the signed
// bulk endpoint.
func (c *CLI) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID [ID...]",
		Aliases: []string{"delete"},
		Short:   "Delete fill-ups",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			if len(args) == 1 {
				if err = c.adapter.DeleteEntry(ctx, session.UserID, args[0]); err != nil {
					return fmt.Errorf("error deleting fuel entry: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted fuel entry %s\n", args[0])
				return nil
			}

			resp, err := c.adapter.DeleteEntries(ctx, models.DeleteFuelEntriesRequest{
				UserID:   session.UserID,
				EntryIDs: args,
			})
			if err != nil {
				return fmt.Errorf("error deleting fuel entries: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d of %d fuel entries (%d not found)\n",
				resp.DeletedCount, resp.TotalRequested, resp.NotFoundCount)
			return nil
		},
	}
}

func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the report over your own fill-ups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.userSession()
			if err != nil {
				return err
			}

			stats, err := c.adapter.UserStats(commandContext(cmd), session.UserID)
			if err != nil {
				return fmt.Errorf("error fetching stats: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			return renderReport(cmd.OutOrStdout(), stats, false)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")

	return cmd
}

func parseDateTime(value string, now func() time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now().Truncate(time.Second), nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
}

func readImportFile(path string) ([]models.FuelEntryData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading import file: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	var entries []models.FuelEntryData
	switch {
	case bytes.HasPrefix(raw, []byte("[")):
		err = json.Unmarshal(raw, &entries)
	case bytes.HasPrefix(raw, []byte("{")):
		var doc struct {
			Entries []models.FuelEntryData `json:"entries"`
		}
		err = json.Unmarshal(raw, &doc)
		entries = doc.Entries
	default:
		return nil, ErrInvalidImportDoc
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImportDoc, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyImportFile
	}

	return entries, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
