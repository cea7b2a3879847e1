// meta/meta.go
package meta

// BOARD_DIM defines the default board dimension.
const BOARD_DIM = 5

// MAX_TURNS defines the default turn limit before the controller stops.
const MAX_TURNS = 100

// BROKER_POLL_MS defines the delay in milliseconds between broker polls.
const BROKER_POLL_MS = 100

// BROKER_ADDR defines the default listen address of the move broker.
const BROKER_ADDR = ":8080"
