// Package config holds the compile-time board setups and publishes the
// active one on the bus.
package config

import (
	"ringled-go/bus"
	"ringled-go/types"
)

const configPrefix = "config"

// Retained topics carrying the active configuration.
var (
	TopicBoard     = bus.T(configPrefix, "board")
	TopicHeartbeat = bus.T(configPrefix, "heartbeat")
)

// Service publishes one validated board configuration as retained messages.
type Service struct {
	cfg types.BoardConfig
}

func NewService(cfg types.BoardConfig) *Service { return &Service{cfg: cfg} }

// Publish validates the configuration and, if it is usable, publishes it
// retained under config/board plus the heartbeat interval (seconds) under
// config/heartbeat.
func (s *Service) Publish(conn *bus.Connection) error {
	if err := Validate(s.cfg); err != nil {
		return err
	}
	conn.Publish(&bus.Message{Topic: TopicBoard, Payload: s.cfg, Retained: true})
	conn.Publish(&bus.Message{Topic: TopicHeartbeat, Payload: s.cfg.HeartbeatS, Retained: true})
	return nil
}
