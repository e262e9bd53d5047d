package models

// Sentinel marks a field that is intentionally absent in a normalized log line.
const Sentinel = "-"

// LogRecordFieldCount is the number of comma separated fields in a raw line.
const LogRecordFieldCount = 4

// LogRecord is one parsed access-log line:
//
//	<client-address>,<actor-id>,<byte-count>,<query-id>
//
// e.g. "10.20.30.40,u200,500,query1". ActorID and ByteCount may hold Sentinel.
type LogRecord struct {
	ClientAddress string
	ActorID       string
	ByteCount     string
	QueryID       string
}
