package service

import "time"

// SystemClock implements ports.Clock with wall-clock time in unix
// milliseconds, the granularity the payment and balance timestamps use.
type SystemClock struct{}

func (SystemClock) NowMs() int64 {
	return time.Now().UnixMilli()
}
