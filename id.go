package poolbook

import "github.com/xraph/poolbook/id"

// ID is the primary identifier type for Poolbook accounts, assets, and events.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
