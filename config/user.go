package config

import (
	"github.com/duke-git/lancet/v2/slice"
)

type userConfig struct {
	ID int64 `toml:"id" mapstructure:"id" json:"id"` // telegram user id
}

func (c Config) UserIDs() []int64 {
	return slice.Map(c.Users, func(_ int, u userConfig) int64 {
		return u.ID
	})
}

// IsAllowed reports whether userID may use the bot. An empty user list
// allows nobody.
func (c Config) IsAllowed(userID int64) bool {
	return slice.Contain(c.UserIDs(), userID)
}
