package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifiers hands out unique ids to owners and keeps track of who holds them.
type Identifiers struct {
	owners map[uuid.UUID]interface{}
}

func NewIdentifiers() *Identifiers {
	return &Identifiers{
		owners: make(map[uuid.UUID]interface{}),
	}
}

func (ids *Identifiers) AcquireNewID(owner interface{}) uuid.UUID {
	id := uuid.New()
	ids.owners[id] = owner
	return id
}

func (ids *Identifiers) Owner(id uuid.UUID) (interface{}, bool) {
	o, ok := ids.owners[id]
	return o, ok
}

func (ids *Identifiers) ReleaseID(id uuid.UUID) error {
	if _, ok := ids.owners[id]; !ok {
		return fmt.Errorf("release id: id '%s' is not held by anyone. Nothing was done", id)
	}
	delete(ids.owners, id)
	return nil
}

func (ids *Identifiers) Len() int {
	return len(ids.owners)
}
