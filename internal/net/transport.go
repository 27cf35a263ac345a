package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/mdns"
)

// Server publishes a Hub over HTTP and optionally advertises it on the LAN.
type Server struct {
	Hub  *Hub
	Addr string

	http *http.Server
	mdns *mdns.Server
}

// Serve starts listening on port in the background. The returned server
// reports the bound address, which matters when port is 0.
func Serve(hub *Hub, port int, advertise bool) (*Server, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	s := &Server{
		Hub:  hub,
		Addr: ln.Addr().String(),
		http: &http.Server{Handler: hub.Handler(), ReadHeaderTimeout: 5 * time.Second},
	}
	bound := ln.Addr().(*net.TCPAddr).Port
	log.Printf("[SHARE] Mirror listening on port %d", bound)

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[SHARE] Server stopped: %v", err)
		}
	}()

	if advertise {
		srv, err := Advertise(bound)
		if err != nil {
			// the mirror still works by address
			log.Printf("[SHARE] mDNS advert failed: %v", err)
		} else {
			s.mdns = srv
		}
	}
	return s, nil
}

// Link is the address viewers should open.
func (s *Server) Link() string {
	_, port, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return "http://" + s.Addr + "/snapshot.jpeg"
	}
	return fmt.Sprintf("http://%s/snapshot.jpeg", net.JoinHostPort(OutgoingIP(), port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.mdns != nil {
		if err := s.mdns.Shutdown(); err != nil {
			log.Printf("[SHARE] mDNS shutdown: %v", err)
		}
	}
	s.Hub.Close()
	return s.http.Shutdown(ctx)
}
