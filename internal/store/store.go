// Package store holds validated recipes in an in-memory sqlite database
// for the duration of one build run.
//
// The store is ephemeral and append-only: every run opens a fresh database,
// loads all recipes once, reads them back for rendering, and discards the
// database when the process ends.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
	"github.com/cltkitchen/recipebuilder/internal/recipe"
)

// Store is the relational holding area for one build run.
type Store struct {
	db *sql.DB
}

// Detail is a stored row read back in full, ingredients and nutrition
// restored to structured form.
type Detail struct {
	ID int64
	recipe.Recipe
}

// Open creates a fresh in-memory store with the recipes schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, builderrors.StoreFailed("open", err)
	}

	// The pool must not open a second connection: each :memory: connection
	// is its own database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, builderrors.StoreFailed("initialize schema", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE recipes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		date_added INTEGER NOT NULL,
		author TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		cook_time TEXT,
		prep_time TEXT,
		yield TEXT,
		serving_size TEXT,
		ingredients BLOB NOT NULL,
		directions TEXT NOT NULL,
		nutrition BLOB
	);
	CREATE INDEX recipes_date_added ON recipes (date_added DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Insert appends one recipe, JSON-encoding ingredients and nutrition at the
// store boundary. dateAdded is the stamp chosen by the builder's date
// policy, not necessarily the document's declared date. The store-assigned
// row id is returned.
func (s *Store) Insert(ctx context.Context, r recipe.Recipe, dateAdded int) (int64, error) {
	ingredients, err := json.Marshal(r.Ingredients)
	if err != nil {
		return 0, builderrors.StoreFailed("encode ingredients", err)
	}

	var nutrition []byte
	if r.Nutrition != nil {
		nutrition, err = json.Marshal(r.Nutrition)
		if err != nil {
			return 0, builderrors.StoreFailed("encode nutrition", err)
		}
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes
			(filename, title, date_added, author, type, description,
			 cook_time, prep_time, yield, serving_size, ingredients, directions, nutrition)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Filename, r.Title, dateAdded, r.Author, r.Type, r.Description,
		r.CookTime, r.PrepTime, r.Yield, r.ServingSize, ingredients, r.Directions, nutrition,
	)
	if err != nil {
		return 0, builderrors.StoreFailed("insert recipe", err).WithContext("recipe", r.Filename)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, builderrors.StoreFailed("insert recipe", err).WithContext("recipe", r.Filename)
	}
	return id, nil
}

// Summaries returns the listing projection of all rows ordered by
// date_added descending, ties broken by insertion order.
func (s *Store) Summaries(ctx context.Context) ([]recipe.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, title, date_added, author, description
		FROM recipes
		ORDER BY date_added DESC, id ASC`)
	if err != nil {
		return nil, builderrors.StoreFailed("query summaries", err)
	}
	defer rows.Close()

	var summaries []recipe.Summary
	for rows.Next() {
		var s recipe.Summary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Title, &s.DateAdded, &s.Author, &s.Description); err != nil {
			return nil, builderrors.StoreFailed("scan summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, builderrors.StoreFailed("iterate summaries", err)
	}
	return summaries, nil
}

// Details returns all rows in full, with ingredients and nutrition decoded
// back to structured form. Row order carries no guarantee.
func (s *Store) Details(ctx context.Context) ([]Detail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, title, date_added, author, type, description,
		       cook_time, prep_time, yield, serving_size, ingredients, directions, nutrition
		FROM recipes`)
	if err != nil {
		return nil, builderrors.StoreFailed("query details", err)
	}
	defer rows.Close()

	var details []Detail
	for rows.Next() {
		var d Detail
		var ingredients, nutrition []byte
		err := rows.Scan(&d.ID, &d.Filename, &d.Title, &d.DateAdded, &d.Author, &d.Type, &d.Description,
			&d.CookTime, &d.PrepTime, &d.Yield, &d.ServingSize, &ingredients, &d.Directions, &nutrition)
		if err != nil {
			return nil, builderrors.StoreFailed("scan detail", err)
		}

		if err := json.Unmarshal(ingredients, &d.Ingredients); err != nil {
			return nil, builderrors.StoreFailed("decode ingredients",
				fmt.Errorf("recipe %s: %w", d.Filename, err))
		}
		if len(nutrition) > 0 {
			if err := json.Unmarshal(nutrition, &d.Nutrition); err != nil {
				return nil, builderrors.StoreFailed("decode nutrition",
					fmt.Errorf("recipe %s: %w", d.Filename, err))
			}
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, builderrors.StoreFailed("iterate details", err)
	}
	return details, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
