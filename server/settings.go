package server

import (
	"fmt"

	"mandelzoom/misc"
)

type Settings struct {
	ServerAddress string
}

func (s *Settings) Verify() error {
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	return nil
}
