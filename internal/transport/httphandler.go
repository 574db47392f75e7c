package transport

import (
	"bufio"
	"errors"
	"fmt"
	"net"

	"mini_web/internal/http/request"
	"mini_web/internal/http/response"
	"mini_web/internal/random"
	"mini_web/internal/router"

	"go.uber.org/zap"
)

var ErrNoResponse = errors.New("handler returned no response")

// httpHandler serves exactly one request per connection: read, route, invoke,
// write one response, close.
type httpHandler struct {
	router       *router.Router
	maxHeadBytes int
	random       random.Random
	logger       *zap.Logger
}

func newHTTPHandler(r *router.Router, maxHeadBytes int, rnd random.Random, logger *zap.Logger) *httpHandler {
	return &httpHandler{
		router:       r,
		maxHeadBytes: maxHeadBytes,
		random:       rnd,
		logger:       logger,
	}
}

func (hh *httpHandler) handler(conn net.Conn) {
	log := hh.logger.With(
		zap.String("conn", hh.random.ConnID()),
		zap.Stringer("remote", conn.RemoteAddr()),
	).Sugar()
	defer hh.closeConnection(conn, log)

	resp := hh.respond(bufio.NewReader(conn), log)

	if _, err := resp.WriteTo(conn); err != nil {
		log.Warnf("Failed to write response: %v", err)
		return
	}
	log.Debugf("Wrote %d response (%s bytes)", resp.StatusCode(), resp.Value("Content-Length"))
}

func (hh *httpHandler) closeConnection(conn net.Conn, log *zap.SugaredLogger) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Warnf("Error closing connection: %v", err)
	}
}

// respond always yields a response, whatever failed along the way.
func (hh *httpHandler) respond(br *bufio.Reader, log *zap.SugaredLogger) *response.Response {
	req, err := hh.readRequest(br)
	if err != nil {
		log.Infof("Error reading request: %v", err)
		return errorResponse(500, err.Error())
	}

	h, ok := hh.router.Match(req.Path(), req.Method())
	if !ok {
		log.Debugf("No route for %s %s", req.Method(), req.Path())
		return errorResponse(404, "Not Found")
	}

	return hh.invoke(h, req, log)
}

func (hh *httpHandler) readRequest(br *bufio.Reader) (*request.Request, error) {
	head, err := request.ReadHead(br, hh.maxHeadBytes)
	if err != nil {
		return nil, err
	}

	req, err := request.Parse(head)
	if err != nil {
		return nil, err
	}

	return request.ReadBody(br, req)
}

func (hh *httpHandler) invoke(h router.Handler, req *request.Request, log *zap.SugaredLogger) (resp *response.Response) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("Handler for %s %s panicked: %v", req.Method(), req.Path(), p)
			resp = errorResponse(500, fmt.Sprint(p))
		}
	}()

	resp, err := h(req)

	var httpErr *response.HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr.Response() != nil:
		return httpErr.Response()
	case err != nil:
		log.Infof("Handler for %s %s failed: %v", req.Method(), req.Path(), err)
		return errorResponse(500, err.Error())
	case resp == nil:
		log.Errorf("Handler for %s %s returned no response", req.Method(), req.Path())
		return errorResponse(500, ErrNoResponse.Error())
	}
	return resp
}

func errorResponse(status int, message string) *response.Response {
	// A map of strings always encodes.
	resp, _ := response.NewError(map[string]string{"error": message}, response.WithStatus(status))
	return resp
}
