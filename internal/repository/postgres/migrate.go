package postgres

import (
	"bytes"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies pending goose migrations. Migrations are embedded SQL
// with a {{prefix}} placeholder so each environment (dev_/test_/prod_)
// owns its own tables, including the goose version table.
func Migrate(databaseURL, tablePrefix string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(prefixFS{inner: embedMigrations, prefix: tablePrefix})
	goose.SetTableName(tablePrefix + "goose_db_version")
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// prefixFS substitutes the table prefix into migration SQL at read time.
type prefixFS struct {
	inner  fs.FS
	prefix string
}

func (p prefixFS) Open(name string) (fs.File, error) {
	f, err := p.inner.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		return f, nil
	}

	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	data = bytes.ReplaceAll(data, []byte("{{prefix}}"), []byte(p.prefix))
	return &memFile{Reader: bytes.NewReader(data), info: sizedInfo{FileInfo: info, size: int64(len(data))}}, nil
}

func (p prefixFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(p.inner, name)
}

type memFile struct {
	*bytes.Reader
	info fs.FileInfo
}

func (m *memFile) Stat() (fs.FileInfo, error) { return m.info, nil }
func (m *memFile) Close() error               { return nil }

type sizedInfo struct {
	fs.FileInfo
	size int64
}

func (s sizedInfo) Size() int64 { return s.size }
