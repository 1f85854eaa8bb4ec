package loader

import "github.com/Jasen77/lefties-righties/internal/model"

// Cache holds the loaded table for one workbook path. The first Table call
// loads; Reload builds a fresh table and swaps the whole reference only on
// success, so a failed reload leaves the previous snapshot serving. Access
// is single-threaded.
type Cache struct {
	path  string
	table *model.Table
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) Path() string { return c.path }

// Table returns the cached table, loading it on first use.
func (c *Cache) Table() (*model.Table, error) {
	if c.table == nil {
		return c.Reload()
	}
	return c.table, nil
}

// Reload re-reads the workbook. On error the cached table is untouched.
func (c *Cache) Reload() (*model.Table, error) {
	t, err := Load(c.path)
	if err != nil {
		return nil, err
	}
	c.table = t
	return t, nil
}
