package contract

// IUUIDGenerator abstracts id generation so tests can produce
// deterministic ids.
type IUUIDGenerator interface {
	NewUUID() string
}
