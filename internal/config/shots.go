package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// ShotTable maps product id to the number of coffee shots (zakladki) one
// sold unit corresponds to. This is hand-curated business configuration,
// not logic: the barista team revises multipliers without a redeploy, so
// the table is loaded from an external JSON file when SHOTS_TABLE_PATH is
// set. The file format is {"product_id": shots_per_unit, ...}.
type ShotTable map[int64]int64

// defaultShotTable is the fallback revision used when no external table is
// configured.
func defaultShotTable() ShotTable {
	return ShotTable{
		// category 34
		230: 1,
		485: 1,
		307: 2,
		231: 1,
		316: 1,
		406: 1,
		183: 1,
		182: 1,
		317: 1,
		// coffee served to the hall
		425: 1,
		424: 1,
		441: 1,
		422: 1,
		423: 2,
		// category 47
		529: 1,
		530: 2,
		531: 2,
		533: 1,
		534: 1,
		535: 1,
	}
}

// LoadShotTable reads the shot multiplier table from path, falling back to
// the built-in default when path is empty or the file cannot be parsed.
func LoadShotTable(path string) ShotTable {
	if path == "" {
		return defaultShotTable()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARNING: SHOTS_TABLE_PATH %q unreadable (%v), using built-in table", path, err)
		return defaultShotTable()
	}

	// JSON object keys are strings; product ids are parsed after decode.
	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("WARNING: SHOTS_TABLE_PATH %q is not a valid table (%v), using built-in table", path, err)
		return defaultShotTable()
	}

	table := make(ShotTable, len(raw))
	for key, per := range raw {
		pid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Printf("WARNING: shot table: skipping non-numeric product id %q", key)
			continue
		}
		table[pid] = per
	}

	if len(table) == 0 {
		log.Printf("WARNING: SHOTS_TABLE_PATH %q produced an empty table, using built-in table", path)
		return defaultShotTable()
	}
	return table
}
