package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/catalogue/internal/catalogue"
)

func marshalRecord(rec catalogue.Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal record %s: %w", rec.SKU, err)
	}
	return string(data), nil
}

func unmarshalRecord(data string) (catalogue.Record, error) {
	var rec catalogue.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return catalogue.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}
