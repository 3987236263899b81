package dataset

import (
	"errors"
	"os"

	"github.com/larpix/pedstats/internal/model"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
)

// errNoPacketsTable indicates that the database lacks the packets table.
var errNoPacketsTable = errors.New("database lacks the packets table")

// sqlitePacket is a row of the packets table.
type sqlitePacket struct {
	PacketType uint8 `db:"packet_type"`
	ChannelID  uint8 `db:"channel_id"`
	Dataword   uint8 `db:"dataword"`
}

// createPacketsTableQuery creates the packets table.
const createPacketsTableQuery = `
CREATE TABLE packets(
	packet_type INTEGER NOT NULL,
	channel_id INTEGER NOT NULL,
	dataword INTEGER NOT NULL
);
`

// readSQLite reads every row of the packets table in insertion order.
func readSQLite(path string) ([]model.PacketRecord, error) {
	sess, err := sqlite.Open(sqlite.ConnectionURL{
		Database: path,
		Options:  map[string]string{"mode": "ro"},
	})
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	collection := sess.Collection(PacketsCollection)
	exists, err := collection.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errNoPacketsTable
	}

	var rows []sqlitePacket
	if err := collection.Find().OrderBy("rowid").All(&rows); err != nil {
		return nil, err
	}
	records := make([]model.PacketRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.PacketRecord{
			PacketType: row.PacketType,
			ChannelID:  row.ChannelID,
			Dataword:   row.Dataword,
		})
	}
	return records, nil
}

// WriteSQLite writes records into the packets table of a new SQLite
// database at path, replacing any existing file.
func WriteSQLite(path string, records []model.PacketRecord) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	sess, err := sqlite.Open(sqlite.ConnectionURL{Database: path})
	if err != nil {
		return err
	}
	defer sess.Close()

	if _, err := sess.SQL().Exec(createPacketsTableQuery); err != nil {
		return err
	}
	return sess.Tx(func(tx db.Session) error {
		collection := tx.Collection(PacketsCollection)
		for _, record := range records {
			row := sqlitePacket{
				PacketType: record.PacketType,
				ChannelID:  record.ChannelID,
				Dataword:   record.Dataword,
			}
			if _, err := collection.Insert(row); err != nil {
				return err
			}
		}
		return nil
	})
}
