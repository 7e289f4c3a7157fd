package api

import (
	"clubfund/config"
)

// SafeErrorMessage keeps internal error details out of client
// responses when running in release mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
