package redis

import "fmt"

// Key prefix for all portal data
const keyPrefix = "vidportal"

// accountKey returns the Redis key for an Account
func accountKey(id int64) string {
	return fmt.Sprintf("%s:account:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> account_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// accountSeqKey returns the Redis key for the account ID sequence
func accountSeqKey() string {
	return fmt.Sprintf("%s:seq:account", keyPrefix)
}

// accountOrderKey returns the Redis key for the insertion-order list of account IDs
func accountOrderKey() string {
	return fmt.Sprintf("%s:accounts", keyPrefix)
}
