package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordgrid/internal/logger"
	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC over a reader/writer pair
type Server struct {
	grid       grid.Service
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	writer     *bufio.Writer
	limit      int
	log        *log.Logger
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(g grid.Service, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(g, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on arbitrary streams
func NewServerWithIO(g grid.Service, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		grid:       g,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(bufio.NewReader(r)),
		writer:     bufio.NewWriter(w),
		limit:      g.Limit(),
		log:        logger.New("ipc"),
	}
}

// Start serves requests until the input ends or ctx is cancelled.
// A clean end of input returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server")
	if err := s.send(map[string]string{"status": "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		// Decode into a raw message first: a request with bad field types
		// is then rejected without losing our place in the stream.
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed")
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Debugf("Bad request: %v", err)
			if err := s.sendError("", "invalid request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handle(ctx, req); err != nil {
			return err
		}
	}
}

// handle dispatches one request. Only write failures are returned.
func (s *Server) handle(ctx context.Context, req Request) error {
	switch req.Action {
	case ActionLetters:
		return s.handleLetters(req)
	case ActionWords:
		return s.handleWords(req)
	case ActionOpen:
		return s.handleOpen(ctx, req)
	case ActionConfig:
		return s.handleConfig(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleLetters(req Request) error {
	start := time.Now()
	rows := s.grid.Letters()
	return s.send(LettersResponse{
		ID:        req.ID,
		Items:     toItems(rows),
		Count:     len(rows),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleWords(req Request) error {
	letter, err := letters.Parse(req.Letter)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	limit, err := s.resolveLimit(req.Limit)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}

	start := time.Now()
	rows := s.grid.WordsN(letter, limit)
	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for letter %s", elapsed, letter)

	return s.send(WordsResponse{
		ID:        req.ID,
		Letter:    letter.String(),
		Items:     toItems(rows),
		Count:     len(rows),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleOpen(ctx context.Context, req Request) error {
	if req.Word == "" {
		return s.sendError(req.ID, "missing 'word' parameter", 400)
	}
	if !req.Open {
		return s.send(OpenResponse{ID: req.ID, URL: s.grid.URL(req.Word)})
	}
	u, err := s.grid.Open(ctx, req.Word)
	if err != nil {
		s.log.Warnf("Open failed: %v", err)
		return s.sendError(req.ID, err.Error(), 502)
	}
	return s.send(OpenResponse{ID: req.ID, URL: u, Opened: true})
}

func (s *Server) handleConfig(req Request) error {
	if req.Limit != nil {
		limit, err := s.resolveLimit(req.Limit)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 400)
		}
		s.limit = limit
		if err := s.config.Update(s.configPath, &limit, nil); err != nil {
			s.log.Warnf("Failed to save config: %v", err)
			return s.sendError(req.ID, "failed to save config", 500)
		}
	}
	return s.send(ConfigResponse{
		ID:     req.ID,
		Status: "ok",
		Limit:  s.limit,
		Prefix: s.config.Search.Prefix,
	})
}

// resolveLimit applies the default and the configured ceiling.
func (s *Server) resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return min(s.limit, s.config.Server.MaxLimit), nil
	}
	if *limit < 0 || *limit > s.config.Server.MaxLimit {
		return 0, fmt.Errorf("limit must be between 0 and %d", s.config.Server.MaxLimit)
	}
	return *limit, nil
}

func (s *Server) send(response any) error {
	data, err := msgpack.Marshal(response)
	if err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return s.writer.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func toItems(rows []grid.Row) []Item {
	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = Item{Text: r.Text, Action: r.Action}
	}
	return items
}
