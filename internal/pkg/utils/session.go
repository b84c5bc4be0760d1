package utils

import "github.com/tidwall/gjson"

const (
	sessionUserIDPath = "user_id"
	sessionRolePath   = "role"
)

// GetSessionRole reads the role field from a raw session blob.
func GetSessionRole(sessionData string) string {
	return gjson.Get(sessionData, sessionRolePath).String()
}

// GetSessionUserID reads the user id field from a raw session blob.
func GetSessionUserID(sessionData string) string {
	return gjson.Get(sessionData, sessionUserIDPath).String()
}
