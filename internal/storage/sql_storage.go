// Package storage provides functionality for persisting and retrieving users
// and tasks. This file implements the SQL database stores.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/models"
)

// DBDriver names a database/sql driver supported by SQLStorage.
type DBDriver string

const (
	SQLite DBDriver = "sqlite3"
	MySQL  DBDriver = "mysql"
)

// schema holds one statement per entry; MySQL rejects multi-statement Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		position INTEGER NOT NULL,
		username VARCHAR(255) NOT NULL PRIMARY KEY,
		password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		position INTEGER NOT NULL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		due_date CHAR(10) NOT NULL,
		assigned_date CHAR(10) NOT NULL,
		completed VARCHAR(3) NOT NULL
	)`,
}

// userRow and taskRow mirror the table columns. Task columns hold the same
// tokens as the text records so both backends share one codec.
type userRow struct {
	Position int    `db:"position"`
	Username string `db:"username"`
	Password string `db:"password"`
}

type taskRow struct {
	Position     int    `db:"position"`
	Username     string `db:"username"`
	Title        string `db:"title"`
	Description  string `db:"description"`
	DueDate      string `db:"due_date"`
	AssignedDate string `db:"assigned_date"`
	Completed    string `db:"completed"`
}

// SQLStorage keeps users and tasks in a SQL database. Saves replace the whole
// table inside one transaction; the position column preserves order.
type SQLStorage struct {
	db     *sqlx.DB
	driver DBDriver
	logger *log.Logger
}

// NewSQLStorage opens the database and makes sure the schema exists.
func NewSQLStorage(driver DBDriver, dataSourceName string, logger *log.Logger) (*SQLStorage, error) {
	dsn := dataSourceName
	switch driver {
	case SQLite:
		// Ensure the directory for the database file exists
		dbDir := filepath.Dir(dataSourceName)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory '%s': %w", dbDir, err)
		}
		dsn = dataSourceName + "?_journal_mode=WAL"
	case MySQL:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := sqlx.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	s := &SQLStorage{db: db, driver: driver, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLStorage) initSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// UsersLoad reads all users in registration order.
func (s *SQLStorage) UsersLoad() ([]models.User, error) {
	var rows []userRow
	if err := s.db.Select(&rows, "SELECT position, username, password FROM users ORDER BY position"); err != nil {
		return nil, persistenceError("load users", err)
	}

	users := make([]models.User, 0, len(rows))
	for i, r := range rows {
		u, err := UserParse(r.Username + fieldSep + r.Password)
		if err != nil {
			return nil, located(err, "users", i+1)
		}
		users = append(users, u)
	}
	s.logger.Debug(context.Background(), "Users loaded", log.Fields{"driver": s.driver, "count": len(users)})
	return users, nil
}

// UsersSave replaces the users table with users.
func (s *SQLStorage) UsersSave(users []models.User) error {
	rows := make([]userRow, len(users))
	for i, u := range users {
		rows[i] = userRow{Position: i, Username: u.Username, Password: u.Password}
	}
	err := s.replace("users",
		"INSERT INTO users (position, username, password) VALUES (:position, :username, :password)",
		len(rows), func(tx *sqlx.Tx, stmt string, i int) error {
			_, err := tx.NamedExec(stmt, rows[i])
			return err
		})
	if err != nil {
		return persistenceError("save users", err)
	}
	return nil
}

// TasksLoad reads all tasks in store order.
func (s *SQLStorage) TasksLoad() ([]models.Task, error) {
	var rows []taskRow
	err := s.db.Select(&rows, `SELECT position, username, title, description, due_date, assigned_date, completed
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, persistenceError("load tasks", err)
	}

	tasks := make([]models.Task, 0, len(rows))
	for i, r := range rows {
		// Decode through the record codec so both backends validate alike
		line := TaskFormatFields(r.Username, r.Title, r.Description, r.DueDate, r.AssignedDate, r.Completed)
		t, err := TaskParse(line)
		if err != nil {
			return nil, located(err, "tasks", i+1)
		}
		tasks = append(tasks, t)
	}
	s.logger.Debug(context.Background(), "Tasks loaded", log.Fields{"driver": s.driver, "count": len(tasks)})
	return tasks, nil
}

// TasksSave replaces the tasks table with tasks in their current order.
func (s *SQLStorage) TasksSave(tasks []models.Task) error {
	rows := make([]taskRow, len(tasks))
	for i, t := range tasks {
		rows[i] = taskRow{
			Position:     i,
			Username:     t.Username,
			Title:        t.Title,
			Description:  t.Description,
			DueDate:      t.DueDate.Format(models.DateLayout),
			AssignedDate: t.AssignedDate.Format(models.DateLayout),
			Completed:    t.Status(),
		}
	}
	err := s.replace("tasks",
		`INSERT INTO tasks (position, username, title, description, due_date, assigned_date, completed)
		VALUES (:position, :username, :title, :description, :due_date, :assigned_date, :completed)`,
		len(rows), func(tx *sqlx.Tx, stmt string, i int) error {
			_, err := tx.NamedExec(stmt, rows[i])
			return err
		})
	if err != nil {
		return persistenceError("save tasks", err)
	}
	return nil
}

// replace empties table and inserts n rows in one transaction.
func (s *SQLStorage) replace(table, insert string, n int, exec func(tx *sqlx.Tx, stmt string, i int) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	for i := 0; i < n; i++ {
		if err := exec(tx, insert, i); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the connection to the database.
func (s *SQLStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close %s database: %w", s.driver, err)
	}
	return nil
}
