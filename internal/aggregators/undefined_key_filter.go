package aggregators

import (
	"log-query/internal/models"
)

// KeepDefined reports whether a mapped record survives filtering: only records
// with a defined key are aggregated.
func KeepDefined(key models.OptionalKey) bool {
	return key.IsDefined()
}
