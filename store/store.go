// Package store exports parsed glossary entries to SQLite.
package store

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"

	_ "github.com/mattn/go-sqlite3"
	"github.com/naoina/genmai"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"glossary-reader/glossary"
)

// EntryModel is a row of the entries table. Position is the entry's index in
// the parsed list.
type EntryModel struct {
	Id         int64 `db:"pk"`
	Position   int64 `db:"unique"`
	Term       string
	Definition string
}

func (EntryModel) TableName() string { return "entries" }

// SeeAlsoModel is one cross reference of the entry at EntryPosition.
type SeeAlsoModel struct {
	Id            int64 `db:"pk"`
	EntryPosition int64
	Position      int64
	Ref           string
}

func (SeeAlsoModel) TableName() string { return "see_also" }

var tables = []genmai.TableNamer{&EntryModel{}, &SeeAlsoModel{}}

// DB is an export database.
type DB struct {
	db *genmai.DB
}

// Create creates a fresh database at path, replacing any existing file.
func Create(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data dir")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to remove old database")
	}
	return Open(path)
}

// Open opens the database at path, creating the tables if needed.
func Open(path string) (*DB, error) {
	db, err := genmai.New(&genmai.SQLite3Dialect{}, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	for _, table := range tables {
		if err := db.CreateTableIfNotExists(table); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "failed to create table %s", table.TableName())
		}
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Save writes entries in one transaction. Saving into a database that already
// holds a glossary fails on the position constraint; use Create for a fresh one.
func (s *DB) Save(entries []glossary.Entry) (err error) {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]EntryModel, 0, len(entries))
	var refs []SeeAlsoModel
	for i, e := range entries {
		rows = append(rows, EntryModel{Position: int64(i), Term: e.Term, Definition: e.Definition})
		for j, ref := range e.SeeAlso {
			refs = append(refs, SeeAlsoModel{EntryPosition: int64(i), Position: int64(j), Ref: ref})
		}
	}

	if err = s.db.Begin(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			if rbErr := s.db.Rollback(); rbErr != nil {
				log.WithFields(log.Fields{
					"err": rbErr,
				}).Error("failed to roll back export")
			}
		}
	}()

	if _, err = s.db.Insert(rows); err != nil {
		return errors.Wrap(err, "failed to insert entries")
	}
	if len(refs) > 0 {
		if _, err = s.db.Insert(refs); err != nil {
			return errors.Wrap(err, "failed to insert see also")
		}
	}
	if err = s.db.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit export")
	}

	log.WithFields(log.Fields{
		"entries": len(rows),
		"refs":    len(refs),
	}).Debug("saved glossary")
	return nil
}

// Entries reads the stored glossary back in source order.
func (s *DB) Entries() ([]glossary.Entry, error) {
	var rows []EntryModel
	if err := s.db.Select(&rows); err != nil {
		return nil, errors.Wrap(err, "failed to select entries")
	}
	var refs []SeeAlsoModel
	if err := s.db.Select(&refs); err != nil {
		return nil, errors.Wrap(err, "failed to select see also")
	}

	slices.SortFunc(rows, func(a, b EntryModel) int { return cmp.Compare(a.Position, b.Position) })
	slices.SortFunc(refs, func(a, b SeeAlsoModel) int {
		if c := cmp.Compare(a.EntryPosition, b.EntryPosition); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})

	byEntry := make(map[int64][]string, len(rows))
	for _, r := range refs {
		byEntry[r.EntryPosition] = append(byEntry[r.EntryPosition], r.Ref)
	}

	entries := make([]glossary.Entry, 0, len(rows))
	for _, r := range rows {
		seeAlso := byEntry[r.Position]
		if seeAlso == nil {
			seeAlso = []string{}
		}
		entries = append(entries, glossary.Entry{
			Term:       r.Term,
			Definition: r.Definition,
			SeeAlso:    seeAlso,
		})
	}
	return entries, nil
}
