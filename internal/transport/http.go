package transport

import (
	"errors"
	"fmt"
	"net"

	"mini_web/internal/config"
	"mini_web/internal/random"
	"mini_web/internal/router"

	"go.uber.org/zap"
)

type httpServer struct {
	addr    string
	router  *router.Router
	handler *httpHandler
	logger  *zap.SugaredLogger
}

func NewHTTPServer(conf config.Config, r *router.Router, logger *zap.Logger) Transport {
	return &httpServer{
		addr:    conf.Addr(),
		router:  r,
		handler: newHTTPHandler(r, conf.MaxHeadBytes(), random.New(), logger),
		logger:  logger.Sugar(),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", ht.addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", ht.addr, err)
	}
	return ln, nil
}

// Serve accepts until the listener is closed, which returns nil. Any other
// accept error is returned as fatal. Each connection runs on its own goroutine
// and Serve never waits for it.
func (ht *httpServer) Serve(listener net.Listener) error {
	ht.router.Freeze()
	ht.logger.Infof("HTTP server is starting on %s with %d routes", listener.Addr(), ht.router.Len())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		go ht.handler.handler(conn)
	}
}
