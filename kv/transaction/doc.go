package transaction

// The transaction package holds domino's transaction layer: snapshot isolation on top of a multi-versioned row store,
// without locks held across client round trips.
//
// A transaction gets a start id from the oracle and writes an ACTIVE metadata row. Its writes go straight to the data
// rows, each version tagged with the start id. Nobody else can see or overwrite these versions until the metadata row
// says COMMITTED: the metadata row is the single source of truth for the outcome of a transaction, and flipping it
// is the commit point. A reader with start id r sees a version written by w iff w committed with a commit id <= r.
//
// Within this package, `mvcc` contains the row layout (versions in CfData, per-writer stamps in CfWrite, metadata
// records in CfMeta), the Store doing row-scoped read-modify-writes, and the Resolver applying the visibility rule.
// `latches` serializes read-modify-writes of a single row; latches are never held across an RPC. `finalizer` stamps
// rows once their writer's outcome is known, so later readers resolve them without asking the coordinator.
//
// Transactions whose client went away are reclaimed lazily: a status query for an ACTIVE transaction whose last
// heartbeat is older than the expiry aborts it. See kv/coordinator for the state machine and kv/client for the
// client side driving it.
