// Package recording stores salt-registry and generator events in a
// SQLite database. It is an opt-in layer: the core allocation path
// stays silent unless a recording hook is attached.
package recording

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SaltGrant is a row recorded every time a registry issues a salt.
type SaltGrant struct {
	Seq    uint64
	Salt   uint64
	Reused bool
}

// Wraparound is a row recorded when a generator's counter resets.
type Wraparound struct {
	Salt     uint64
	Capacity uint64
}

// Allocation is a row recorded for every minted identifier.
type Allocation struct {
	ID   uint64
	Salt uint64
}

// A Writer records allocation events into a SQLite database. Rows are
// buffered and written in batches; the remainder is flushed at process
// exit.
type Writer struct {
	*sql.DB

	dbName    string
	batchSize int

	grants      []SaltGrant
	wraparounds []Wraparound
	allocations []Allocation
	entryCount  int
}

// NewWriter creates a Writer backed by the file path + ".sqlite3". If
// path is empty, a unique name is generated. The file must not already
// exist.
func NewWriter(path string) *Writer {
	w := &Writer{
		dbName:    path,
		batchSize: 100000,
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

func (w *Writer) init() {
	if w.dbName == "" {
		w.dbName = "saltid_record_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db

	w.mustExecute(`CREATE TABLE salt_grants (
	seq INTEGER,
	salt INTEGER,
	reused INTEGER
);`)
	w.mustExecute(`CREATE TABLE wraparounds (
	salt INTEGER,
	capacity INTEGER
);`)
	w.mustExecute(`CREATE TABLE allocations (
	id INTEGER,
	salt INTEGER
);`)
}

// RecordSaltGrant buffers a salt-grant row.
func (w *Writer) RecordSaltGrant(g SaltGrant) {
	w.grants = append(w.grants, g)
	w.countEntry()
}

// RecordWraparound buffers a wraparound row.
func (w *Writer) RecordWraparound(wr Wraparound) {
	w.wraparounds = append(w.wraparounds, wr)
	w.countEntry()
}

// RecordAllocation buffers an allocation row.
func (w *Writer) RecordAllocation(a Allocation) {
	w.allocations = append(w.allocations, a)
	w.countEntry()
}

func (w *Writer) countEntry() {
	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

// Flush writes all buffered rows into the database.
func (w *Writer) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	w.flushGrants()
	w.flushWraparounds()
	w.flushAllocations()

	w.entryCount = 0
}

func (w *Writer) flushGrants() {
	if len(w.grants) == 0 {
		return
	}

	stmt := w.mustPrepare("INSERT INTO salt_grants VALUES (?, ?, ?)")
	defer stmt.Close()

	for _, g := range w.grants {
		_, err := stmt.Exec(g.Seq, g.Salt, g.Reused)
		if err != nil {
			panic(err)
		}
	}

	w.grants = nil
}

func (w *Writer) flushWraparounds() {
	if len(w.wraparounds) == 0 {
		return
	}

	stmt := w.mustPrepare("INSERT INTO wraparounds VALUES (?, ?)")
	defer stmt.Close()

	for _, wr := range w.wraparounds {
		_, err := stmt.Exec(wr.Salt, wr.Capacity)
		if err != nil {
			panic(err)
		}
	}

	w.wraparounds = nil
}

func (w *Writer) flushAllocations() {
	if len(w.allocations) == 0 {
		return
	}

	stmt := w.mustPrepare("INSERT INTO allocations VALUES (?, ?)")
	defer stmt.Close()

	for _, a := range w.allocations {
		_, err := stmt.Exec(a.ID, a.Salt)
		if err != nil {
			panic(err)
		}
	}

	w.allocations = nil
}

func (w *Writer) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (w *Writer) mustPrepare(query string) *sql.Stmt {
	stmt, err := w.Prepare(query)
	if err != nil {
		panic(err)
	}

	return stmt
}
