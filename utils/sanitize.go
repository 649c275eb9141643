package utils

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy allows the markup typical of user generated content and strips
// everything else, scripts included.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize strips unsafe HTML from user supplied text before it is persisted.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}
