package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// namespace for deterministic IDs (see NewID)
var idNamespace = uuid.MustParse("6b0c4f0e-5d4a-4f53-9a57-0f9d4c1f7e21")

// NewRandomID returns a new random ID, used for object IDs & etags.
func NewRandomID() string {
	return uuid.New().String()
}

// NewID returns a deterministic ID for the given seed; handy in tests where
// we want valid IDs that compare equal between runs.
func NewID(seed int) string {
	return uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(seed))).String()
}

// IsValidID returns if the given string is an ID we could have issued.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
