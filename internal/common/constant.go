package common

// Store keys for the persisted state layout. The whole directory, session
// snapshot and ledger live under these three keys as JSON values.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyPosts       = "posts"
)
