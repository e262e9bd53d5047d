package mappers

import (
	"strings"

	"log-query/internal/models"
)

// ParseRecord splits line positionally into
// [client address, actor id, byte count, query id]. Field contents are not
// trimmed or validated here.
func ParseRecord(line string) (models.LogRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != models.LogRecordFieldCount {
		return models.LogRecord{}, errMalformedLine(len(fields))
	}
	return models.LogRecord{
		ClientAddress: fields[0],
		ActorID:       fields[1],
		ByteCount:     fields[2],
		QueryID:       fields[3],
	}, nil
}
