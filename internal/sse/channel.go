package sse

import (
	"github.com/sarpt/playlist-web-api/pkg/state/pkg/status"
)

type channel interface {
	AddObserver(address string)
	RemoveObserver(address string)
	Replay(res ResponseWriter) error
	ServeObserver(address string, res ResponseWriter, done chan<- bool, errors chan<- error)
	Variant() status.ChannelVariant
}
