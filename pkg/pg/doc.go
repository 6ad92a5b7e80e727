// Package pg connects to PostgreSQL with pgx and applies the goose
// migrations that create the option store schema.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.MigrateFS(ctx, pool, migrations.FS, cfg, log); err != nil {
//	    return err
//	}
//	store := optionstore.NewPostgresStore(pool)
//
// Migrate reads migrations from cfg.MigrationsPath on disk; MigrateFS reads
// them from an fs.FS such as the embedded internal/db/migrations.FS.
package pg
