package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"placefinder-api/internal/config"
	"placefinder-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// mapstore maintains the PostgreSQL map store: schema creation, pruning of
// old maps and export of a stored map document.
func main() {
	migrate := flag.Bool("migrate", false, "Create the rendered_maps table if it does not exist")
	olderThan := flag.Duration("prune-older-than", 0, "Delete maps created longer ago than this duration")
	export := flag.String("export", "", "Id of a stored map to export")
	out := flag.String("out", "", "File to write the exported map to (defaults to stdout)")
	flag.Parse()

	if !*migrate && *olderThan <= 0 && *export == "" {
		fmt.Println("Error: one of --migrate, --prune-older-than or --export is required")
		flag.Usage()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not configured")
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	store := repository.NewPostgresMapStore(conn)

	if *migrate {
		if err := store.EnsureSchema(ctx); err != nil {
			fmt.Printf("Error creating table: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Schema is up to date")
	}

	if *olderThan > 0 {
		if err := prune(ctx, store, time.Now().Add(-*olderThan)); err != nil {
			fmt.Printf("Error pruning maps: %v\n", err)
			os.Exit(1)
		}
	}

	if *export != "" {
		if err := exportMap(ctx, store, *export, *out); err != nil {
			fmt.Printf("Error exporting map: %v\n", err)
			os.Exit(1)
		}
	}
}

func prune(ctx context.Context, store *repository.PostgresMapStore, cutoff time.Time) error {
	removed, err := store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	remaining, err := store.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d maps created before %s, %d remaining\n", removed, cutoff.Format(time.RFC3339), remaining)
	return nil
}

func exportMap(ctx context.Context, store *repository.PostgresMapStore, id, path string) error {
	m, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = os.Stdout.Write(m.Document)
		return err
	}

	if err := os.WriteFile(path, m.Document, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Wrote map %s (%.6f, %.6f) to %s\n", m.ID, m.Origin.Latitude, m.Origin.Longitude, path)
	return nil
}
