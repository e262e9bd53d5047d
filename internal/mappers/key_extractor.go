package mappers

import "log-query/internal/models"

// ExtractKey returns the undefined key when the actor is the sentinel, and
// (client, actor, query) otherwise. An undefined byte count does not affect the key:
// only a missing actor disqualifies a record from aggregation.
func ExtractKey(record models.LogRecord) models.OptionalKey {
	if record.ActorID == models.Sentinel {
		return models.UndefinedKey()
	}
	return models.SomeKey(models.GroupKey{
		ClientAddress: record.ClientAddress,
		ActorID:       record.ActorID,
		QueryID:       record.QueryID,
	})
}
