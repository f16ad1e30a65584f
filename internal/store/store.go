package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/sabers/internal/tracking"
)

var ErrNotFound = errors.New("not found")

// Store keeps a library of charts and the hand tracking takes recorded
// against them. Charts are keyed by the hash of their raw bytes.
type Store struct {
	db *sql.DB
}

type ChartEntry struct {
	Sum   string
	Name  string
	Added time.Time
}

type TakeEntry struct {
	ID       int64
	Sum      string
	Created  time.Time
	Duration time.Duration
}

const schema = `
create table if not exists charts
  (
	  sum text not null primary key,
	  name text,
	  added integer,
	  data blob
  );
create table if not exists takes
  (
	  id integer not null primary key,
	  sum text not null references charts(sum),
	  created integer,
	  duration integer,
	  frames blob
  );
`

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, err
	}
	if _, err := db.Exec(schema); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SaveChart stores the raw chart bytes and returns their hash. Saving the
// same chart twice is a no-op.
func (s *Store) SaveChart(name string, data []byte) (string, error) {
	sum := Hash(data)
	_, err := s.db.Exec(
		"insert or ignore into charts(sum, name, added, data) values(?, ?, ?, ?)",
		sum, name, time.Now().Unix(), data,
	)
	if nil != err {
		return "", fmt.Errorf("unable to save chart: %w", err)
	}
	return sum, nil
}

func (s *Store) Chart(sum string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("select data from charts where sum = ?", sum).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("chart %s: %w", sum, ErrNotFound)
	}
	if nil != err {
		return nil, err
	}
	return data, nil
}

func (s *Store) Charts() ([]ChartEntry, error) {
	rows, err := s.db.Query("select sum, name, added from charts order by added, name")
	if nil != err {
		return nil, err
	}
	defer rows.Close()
	var entries []ChartEntry
	for rows.Next() {
		var e ChartEntry
		var added int64
		if err := rows.Scan(&e.Sum, &e.Name, &added); nil != err {
			return nil, err
		}
		e.Added = time.Unix(added, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveTake stores a recorded take for the chart with the given hash.
func (s *Store) SaveTake(sum string, take *tracking.Take) (int64, error) {
	data, err := take.Marshal()
	if nil != err {
		return 0, fmt.Errorf("unable to encode take: %w", err)
	}
	res, err := s.db.Exec(
		"insert into takes(sum, created, duration, frames) values(?, ?, ?, ?)",
		sum, time.Now().Unix(), int64(take.Duration()), data,
	)
	if nil != err {
		return 0, fmt.Errorf("unable to save take: %w", err)
	}
	return res.LastInsertId()
}

// Take loads a take and the hash of the chart it was recorded against.
func (s *Store) Take(id int64) (string, *tracking.Take, error) {
	var sum string
	var data []byte
	err := s.db.QueryRow("select sum, frames from takes where id = ?", id).Scan(&sum, &data)
	if err == sql.ErrNoRows {
		return "", nil, fmt.Errorf("take %d: %w", id, ErrNotFound)
	}
	if nil != err {
		return "", nil, err
	}
	take, err := tracking.UnmarshalTake(data)
	if nil != err {
		return "", nil, fmt.Errorf("take %d: %w", id, err)
	}
	return sum, take, nil
}

func (s *Store) Takes(sum string) ([]TakeEntry, error) {
	rows, err := s.db.Query("select id, sum, created, duration from takes where sum = ? order by id", sum)
	if nil != err {
		return nil, err
	}
	defer rows.Close()
	var entries []TakeEntry
	for rows.Next() {
		var e TakeEntry
		var created, duration int64
		if err := rows.Scan(&e.ID, &e.Sum, &created, &duration); nil != err {
			return nil, err
		}
		e.Created = time.Unix(created, 0)
		e.Duration = time.Duration(duration)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
