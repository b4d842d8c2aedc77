package sqldb

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

// Dialect holds the driver name and the statements that differ between databases
type Dialect struct {
	Name        string
	DriverName  string
	CreateTable string
	Upsert      string
}

var (
	// SQLite targets github.com/mattn/go-sqlite3
	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite3",
		CreateTable: `CREATE TABLE IF NOT EXISTS coffees (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		Upsert: "INSERT INTO coffees (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
	}

	// MySQL targets github.com/go-sql-driver/mysql. IDs compare byte for byte,
	// so keys differing only by case or accents are distinct rows.
	MySQL = Dialect{
		Name:       "mysql",
		DriverName: "mysql",
		CreateTable: `CREATE TABLE IF NOT EXISTS coffees (
			id   VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		) CHARACTER SET utf8mb4`,
		Upsert: "INSERT INTO coffees (id, name) VALUES (?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name)",
	}
)

// DialectByName returns the dialect registered under name
func DialectByName(name string) (Dialect, error) {
	switch name {
	case SQLite.Name:
		return SQLite, nil
	case MySQL.Name:
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
	}
}

// MySQLConfig holds the connection parameters for a MySQL store
type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

// DSN formats the config as a go-sql-driver/mysql data source name
func (c *MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", c.Host, c.Port)
	cfg.DBName = c.Database
	cfg.ParseTime = true

	return cfg.FormatDSN()
}
