package testutil

import (
	"time"

	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

func MustTime(value string) time.Time {
	t, err := timeutil.ParseISO8601(value)
	if err != nil {
		panic(err)
	}
	return t
}
