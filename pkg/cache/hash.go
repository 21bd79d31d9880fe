package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// conversionKey keys one conversion as "<op>:<sha256>". The digest covers
// the request body and the JSON form of the options that change its
// output, separated by a zero byte.
func conversionKey(op string, body []byte, opts any) string {
	h := sha256.New()
	h.Write(body)
	h.Write([]byte{0})
	_ = json.NewEncoder(h).Encode(opts)
	return op + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data. File cache entries are named by
// the hash of their key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
