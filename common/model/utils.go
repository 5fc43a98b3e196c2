package model

import (
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.WithFields(log.Fields{"elapsed": elapsed}).Debugf("time track: %v", name)
}

func StartPprof(listener net.Listener) {
	log.Info(http.Serve(listener, nil))
}
