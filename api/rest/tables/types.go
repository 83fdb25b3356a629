package tables

import "encoding/json"

// Table is an opaque table record. No server-side table state exists yet,
// so listings are always empty and the record shape is left open.
type Table = json.RawMessage

// Stats aggregates over all tracked tables
type Stats struct {
	TotalTables  int   `json:"totalTables"`
	TotalPlayers int   `json:"totalPlayers"`
	TotalPot     int64 `json:"totalPot"`
}
