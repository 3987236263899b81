// Package dataset reads the packets collection of a pedestal dataset.
//
// Two containers are supported: HDF5 files, which is how the LArPix DAQ
// stores packets, and SQLite databases holding a packets table with the
// same columns. The container is detected by looking at the magic bytes.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/larpix/pedstats/internal/model"
)

// PacketsCollection is the name of the packets dataset or table.
const PacketsCollection = "packets"

// Container is the kind of file holding a dataset.
type Container int

const (
	// ContainerUnknown indicates we could not recognize the file.
	ContainerUnknown = Container(iota)

	// ContainerHDF5 is an HDF5 file.
	ContainerHDF5

	// ContainerSQLite is a SQLite database.
	ContainerSQLite
)

// String implements fmt.Stringer.
func (c Container) String() string {
	switch c {
	case ContainerHDF5:
		return "hdf5"
	case ContainerSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

var (
	hdf5Magic   = []byte("\x89HDF\r\n\x1a\n")
	sqliteMagic = []byte("SQLite format 3\x00")
)

// Sniff returns the container of the file at path.
func Sniff(path string) (Container, error) {
	fp, err := os.Open(path)
	if err != nil {
		return ContainerUnknown, err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return ContainerUnknown, err
	}
	if info.IsDir() {
		return ContainerUnknown, fmt.Errorf("%s: is a directory", path)
	}
	header := make([]byte, len(sqliteMagic))
	count, err := io.ReadFull(fp, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return ContainerUnknown, err
	}
	header = header[:count]
	switch {
	case bytes.HasPrefix(header, hdf5Magic):
		return ContainerHDF5, nil
	case bytes.HasPrefix(header, sqliteMagic):
		return ContainerSQLite, nil
	default:
		return ContainerUnknown, nil
	}
}

// Load opens the dataset at path read-only and returns the data packets
// it contains, in file order. All failures wrap [model.ErrDatasetOpen].
func Load(path string) ([]model.PacketRecord, error) {
	records, err := LoadAll(path)
	if err != nil {
		return nil, err
	}
	return FilterData(records), nil
}

// LoadAll is like [Load] but returns every packet.
func LoadAll(path string) ([]model.PacketRecord, error) {
	container, err := Sniff(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrDatasetOpen, err)
	}
	var records []model.PacketRecord
	switch container {
	case ContainerHDF5:
		records, err = readHDF5(path)
	case ContainerSQLite:
		records, err = readSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %s: unrecognized file format", model.ErrDatasetOpen, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", model.ErrDatasetOpen, path, container, err)
	}
	return records, nil
}

// FilterData returns the data packets in records.
func FilterData(records []model.PacketRecord) []model.PacketRecord {
	out := make([]model.PacketRecord, 0, len(records))
	for _, record := range records {
		if record.IsData() {
			out = append(out, record)
		}
	}
	return out
}

// Write writes records to path choosing the container from the
// file extension: ".db", ".sqlite" and ".sqlite3" select SQLite and
// everything else selects HDF5. An existing file is overwritten.
func Write(path string, records []model.PacketRecord) error {
	switch ContainerForPath(path) {
	case ContainerSQLite:
		return WriteSQLite(path, records)
	default:
		return WriteHDF5(path, records)
	}
}

// ContainerForPath returns the container [Write] uses for path.
func ContainerForPath(path string) Container {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return ContainerSQLite
	default:
		return ContainerHDF5
	}
}
