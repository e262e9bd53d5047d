package models

import "github.com/shopspring/decimal"

// Group is the flat, serialisable form of one AggregationResult entry.
//
// Example JSON:
//
//	{
//	  "clientAddress": "10.20.30.41",
//	  "actorId": "u300",
//	  "queryId": "query1",
//	  "count": 2,
//	  "totalBytes": "1200"
//	}
//
// totalBytes is a decimal string so arbitrarily large sums survive JSON decoders
// that parse numbers as float64.
type Group struct {
	ClientAddress string          `json:"clientAddress"`
	ActorID       string          `json:"actorId"`
	QueryID       string          `json:"queryId"`
	Count         int64           `json:"count"`
	TotalBytes    decimal.Decimal `json:"totalBytes"`
}
