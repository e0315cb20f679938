package accounts

import (
	"encoding/json"

	"SolTools/internal/keystore"
)

// ExportRecord is one line of the multi-send export. Amount assignment
// is a downstream concern; the core only fills the address.
type ExportRecord struct {
	Address         string  `json:"address"`
	SuggestedAmount float64 `json:"suggested_amount"`
}

// ExportRecords flattens a batch into ordered multi-send records.
func ExportRecords(b *Batch) []ExportRecord {
	recs := make([]ExportRecord, 0, len(b.Keys))
	for _, kp := range b.Keys {
		recs = append(recs, ExportRecord{Address: kp.Address()})
	}
	return recs
}

// WriteExportJSONL appends the records to path, one JSON object per line.
func WriteExportJSONL(path string, recs []ExportRecord) error {
	for _, rec := range recs {
		blob, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := keystore.AppendJSONL(path, blob); err != nil {
			return err
		}
	}
	return nil
}
