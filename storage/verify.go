package storage

import (
	"context"
	"strings"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/go-pg/pg/v10/types"
	"golang.org/x/xerrors"
)

// VerifyCurrentSchema compares the schema present in the database with the
// model definitions compiled into this build and reports any missing tables
// or columns.
func (d *Database) VerifyCurrentSchema(ctx context.Context) error {
	// If we're already connected then use that connection
	if d.db != nil {
		return verifyCurrentSchema(ctx, d.db, d.schemaName)
	}

	// Temporarily connect
	db, err := connect(ctx, d.opt)
	if err != nil {
		return xerrors.Errorf("connect: %w", err)
	}
	defer db.Close() // nolint: errcheck
	return verifyCurrentSchema(ctx, db, d.schemaName)
}

func verifyCurrentSchema(ctx context.Context, db *pg.DB, schemaName string) error {
	valid := true
	for _, m := range models {
		q := db.Model(m)
		tbl := q.TableModel().Table()

		if err := verifyModel(ctx, db, schemaName, tbl); err != nil {
			valid = false
			log.Errorf("verify schema: %v", err)
		}
	}
	if !valid {
		return xerrors.Errorf("database schema was not compatible with the models in this build. Did you forget to run a migration?")
	}
	return nil
}

func verifyModel(ctx context.Context, db *pg.DB, schemaName string, tbl *orm.Table) error {
	tableName := stripQuotes(tbl.SQLNameForSelects)

	exists, err := tableExists(ctx, db, schemaName, tableName)
	if err != nil {
		return xerrors.Errorf("checking if %s.%s exists: %w", schemaName, tableName, err)
	}
	if !exists {
		return xerrors.Errorf("required table %s.%s not found", schemaName, tableName)
	}

	for _, fld := range tbl.Fields {
		var datatype string
		_, err := db.QueryOneContext(ctx, pg.Scan(&datatype), `
			SELECT data_type
			FROM information_schema.columns
			WHERE table_schema = ? AND table_name = ? AND column_name = ?`,
			schemaName, tableName, fld.SQLName)
		if err == pg.ErrNoRows {
			return xerrors.Errorf("required column %s.%s.%s not found", schemaName, tableName, fld.SQLName)
		}
		if err != nil {
			return xerrors.Errorf("checking column %s.%s.%s: %w", schemaName, tableName, fld.SQLName, err)
		}
	}

	return nil
}

func stripQuotes(s types.Safe) string {
	return strings.Trim(string(s), `"`)
}
