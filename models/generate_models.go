package models

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

/*
Query generation and column report.

Run `site generate` to migrate the schema, print a report of database columns
that are not mapped by any Go model field, and emit typed query helpers
(gorm/gen) into ./generated.

Example report output:
=== COLUMN MISMATCH REPORT ===
--- Table: blog_posts ---
Found 1 columns not accounted for in model:
  - legacy_slug

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// All returns every persisted model in dependency order (referenced tables first).
func All() []any {
	return []any{
		&User{},
		&Category{},
		&BlogPost{},
		&Project{},
		&Contact{},
		&Newsletter{},
		&Media{},
	}
}

// GenerateModels migrates the schema and writes gorm/gen query helpers to outPath.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	migrateDB := db.Session(&gorm.Session{
		Logger:                 verbose,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	fmt.Println("Migrating models...")
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("error during models migration: %w", err)
	}

	if _, err := GenerateColumnMismatchReport(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()

	fmt.Println("Model generation complete!")
	return nil
}

// GenerateColumnMismatchReport prints, per table, the database columns that no
// model field maps to and returns the total count.
func GenerateColumnMismatchReport(db *gorm.DB) (int, error) {
	fmt.Println("=== COLUMN MISMATCH REPORT ===")

	total := 0
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return total, fmt.Errorf("parse model %T: %w", model, err)
		}
		tableName := stmt.Schema.Table
		fmt.Printf("\n--- Table: %s ---\n", tableName)

		if !db.Migrator().HasTable(tableName) {
			fmt.Println("Table does not exist yet (will be created during migration)")
			continue
		}

		dbColumns, err := tableColumns(db, model)
		if err != nil {
			return total, err
		}

		mismatches := findColumnMismatches(dbColumns, modelColumns(stmt.Schema))
		if len(mismatches) == 0 {
			fmt.Println("All columns are accounted for in the model.")
			continue
		}
		fmt.Printf("Found %d columns not accounted for in model:\n", len(mismatches))
		for _, col := range mismatches {
			fmt.Printf("  - %s\n", col)
		}
		total += len(mismatches)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total mismatched columns across all tables: %d\n", total)
	return total, nil
}

func tableColumns(db *gorm.DB, model any) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(model)
	if err != nil {
		return nil, fmt.Errorf("error reading columns for %T: %w", model, err)
	}
	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// modelColumns lists the column names of a parsed schema, skipping association fields.
func modelColumns(s *schema.Schema) []string {
	var columns []string
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, strings.ToLower(field.DBName))
	}
	return columns
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[strings.ToLower(col)] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
