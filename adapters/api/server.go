package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Server struct {
	Addr   string
	Server http.Server
	Log    logrus.FieldLogger

	listener net.Listener
	errCh    chan error
}

func NewServer(addr string, handler http.Handler, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		Addr: addr,
		Server: http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Log:   log,
		errCh: make(chan error, 1),
	}
}

// Start binds the listener and serves in the background. Bind errors are
// returned; later serve errors are delivered on Errors().
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen on '%s': %v", s.Addr, err)
	}
	s.listener = listener
	s.Log.Infof("Server running on %s", listener.Addr())

	go func() {
		err := s.Server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
		close(s.errCh)
	}()
	return nil
}

// ListenAddr is the bound address, useful when Addr asks for port 0.
func (s *Server) ListenAddr() string {
	if s.listener == nil {
		return s.Addr
	}
	return s.listener.Addr().String()
}

func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Stop gracefully stops a server.
func (s *Server) Stop(ctx context.Context) {
	s.Log.Debugf("Stop server on '%s'...", s.ListenAddr())
	if err := s.Server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.Log.Warnf("Stop server on '%s': %v", s.ListenAddr(), err)
	}
}
