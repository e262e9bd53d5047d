package models

import "fmt"

// GroupKey is the identity records are aggregated by. The byte count is never
// part of it. Comparable, so it is used directly as a map key.
type GroupKey struct {
	ClientAddress string `json:"clientAddress"`
	ActorID       string `json:"actorId"`
	QueryID       string `json:"queryId"`
}

// String renders the key as "(client,actor,query)".
func (k GroupKey) String() string {
	return fmt.Sprintf("(%s,%s,%s)", k.ClientAddress, k.ActorID, k.QueryID)
}

// Less orders keys by client address, then actor, then query.
func (k GroupKey) Less(o GroupKey) bool {
	if k.ClientAddress != o.ClientAddress {
		return k.ClientAddress < o.ClientAddress
	}
	if k.ActorID != o.ActorID {
		return k.ActorID < o.ActorID
	}
	return k.QueryID < o.QueryID
}

// OptionalKey is either a defined GroupKey or the undefined key produced for
// records without an actor. The undefined key has no components.
type OptionalKey struct {
	key     GroupKey
	defined bool
}

func SomeKey(key GroupKey) OptionalKey {
	return OptionalKey{key: key, defined: true}
}

func UndefinedKey() OptionalKey {
	return OptionalKey{}
}

func (o OptionalKey) IsDefined() bool {
	return o.defined
}

// Get returns the key and true, or the zero GroupKey and false when undefined.
func (o OptionalKey) Get() (GroupKey, bool) {
	return o.key, o.defined
}

func (o OptionalKey) String() string {
	if !o.defined {
		return "undefined"
	}
	return o.key.String()
}
