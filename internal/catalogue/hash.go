package catalogue

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DomainRecord separates record content hashes from any other hash family.
const DomainRecord = "catalogue/record/v1"

// ContentHash computes SHA256(domain + 0x00 + json(record)).
// Struct field order makes the JSON encoding stable, so equal records always
// hash equally.
func ContentHash(r Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("content hash: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainRecord))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
