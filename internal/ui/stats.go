package ui

import "sync/atomic"

type Stats struct {
	PagesFetched   atomic.Int64
	PagesFailed    atomic.Int64
	NamesExtracted atomic.Int64
}
