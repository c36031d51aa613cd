package viewer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/session"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexPage []byte

const frameInterval = 16 * time.Millisecond

// Server shows a session in the browser. Input events arrive over a websocket and frames are pushed back
// over the same connection.
type Server struct {
	address  string
	listener net.Listener
	mux      *http.ServeMux
	server   *http.Server
	session  *session.Session
	upgrader websocket.Upgrader

	Logger bslogger.Logger
	WG     *sync.WaitGroup
}

// NewServer serves sess at address. An empty address picks a free port on localhost.
func NewServer(sess *session.Session, address string) *Server {
	s := &Server{
		address: address,
		mux:     http.NewServeMux(),
		session: sess,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		Logger: bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		WG:     &sync.WaitGroup{},
	}
	s.mux.HandleFunc("/", s.index)
	s.mux.HandleFunc("/ws", s.stream)
	return s
}

func (s *Server) Address() string {
	return s.address
}

func (s *Server) Run() error {
	if s.address == "" {
		address, err := misc.FreeAddress("localhost")
		if err != nil {
			s.Logger.Error("Finding a free port")
			return err
		}
		s.address = address
	}

	var err error
	s.listener, err = net.Listen("tcp", s.address)
	if err != nil {
		s.Logger.Errorf("Listening at address %s", s.address)
		return err
	}

	s.server = &http.Server{Addr: s.address, Handler: s.mux}
	s.WG.Add(1)
	go func() {
		defer s.WG.Done()
		if err := s.server.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Errorf("Error serving at address %s", s.address)
			s.Logger.Fatal(err.Error())
		}
	}()

	s.Logger.Infof("Running viewer at http://%s", s.address)
	return nil
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.Logger.Errorf("Shutting down viewer at address %s", s.address)
		return err
	}
	s.WG.Wait()
	s.Logger.Infof("Shutting down viewer at address %s", s.address)
	return nil
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexPage); err != nil {
		s.Logger.Warningf("Writing index page: %s", err)
	}
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not open websocket connection", http.StatusBadRequest)
		return
	}
	defer conn.Close()
	s.Logger.Infof("Viewer connected from %s", r.RemoteAddr)

	done := make(chan struct{})
	go s.readInputs(conn, done)
	s.writeFrames(conn, done)
	s.Logger.Infof("Viewer disconnected from %s", r.RemoteAddr)
}

// readInputs forwards browser input to the session until the connection fails
func (s *Server) readInputs(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Debugf("Error reading message: %v", err)
			return
		}

		var in Input
		if err := json.Unmarshal(p, &in); err != nil {
			s.Logger.Warningf("Error unmarshaling input: %v", err)
			continue
		}
		e, err := in.Event()
		if err != nil {
			s.Logger.Warning(err.Error())
			continue
		}
		s.session.Submit(e)
	}
}

// writeFrames is the only writer on conn
func (s *Server) writeFrames(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var last State
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		rc := s.session.RenderContext()
		state := newState(rc)
		if state == last {
			continue
		}
		if err := conn.WriteJSON(state); err != nil {
			s.Logger.Debugf("Error sending state: %v", err)
			return
		}
		if state.Version != last.Version {
			if err := conn.WriteMessage(websocket.BinaryMessage, rc.Image.Pix); err != nil {
				s.Logger.Debugf("Error sending frame: %v", err)
				return
			}
		}
		last = state
		if state.Closed {
			message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
			misc.CheckError(conn.WriteMessage(websocket.CloseMessage, message), s.Logger, misc.Warning)
			return
		}
	}
}
