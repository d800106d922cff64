// Package database provides SQLite connectivity for the request audit log.
//
// It manages:
//   - Connections with WAL mode and a busy timeout
//   - In-memory databases for tests (MemoryPath)
//   - Schema migrations read from any fs.FS, tracked in schema_migrations
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: cfg.Database.Path, WALMode: true, BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx, migrations.FS, "."); err != nil {
//	    return err
//	}
//
// Migrations are additive: new columns must be nullable or carry a
// default, and every .up.sql should ship with a .down.sql.
package database
