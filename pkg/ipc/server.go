package ipc

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iyhaoo/starcode/internal/utils"
	"github.com/iyhaoo/starcode/pkg/inventory"
	"github.com/iyhaoo/starcode/pkg/trie"
)

// Server drives a trie.Trie over a msgpack-encoded stdin/stdout
// request/response loop.
type Server struct {
	trie *trie.Trie
	inv  *inventory.Inventory
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
}

// NewServer creates a Server reading requests from r and writing
// responses to w. t must already be constructed with the desired
// maxTau/bottom; the server never calls trie.New itself.
func NewServer(t *trie.Trie, r io.Reader, w io.Writer) *Server {
	return &Server{
		trie: t,
		inv:  inventory.New(),
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
	}
}

// Start reads requests until EOF or a decode error, dispatching each
// one and writing a response before reading the next.
func (s *Server) Start() error {
	log.Debug("starting ipc server")
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Cmd {
	case "insert":
		s.handleInsert(req)
	case "search":
		s.handleSearch(req)
	case "stats":
		s.handleStats(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown command: %s", req.Cmd))
	}
}

func (s *Server) handleInsert(req Request) {
	if req.Barcode == "" {
		s.sendError(req.ID, "missing 'b' (barcode) field")
		return
	}
	node, err := s.trie.InsertString(req.Barcode)
	if err != nil {
		s.sendError(req.ID, err.Error())
		return
	}
	wasNew := node.Data() == nil
	if wasNew {
		node.SetData(req.Barcode)
		s.inv.Add(req.Barcode)
	}
	s.send(Response{ID: req.ID, Status: "ok", Inserted: wasNew})
}

func (s *Server) handleSearch(req Request) {
	if req.Barcode == "" {
		s.sendError(req.ID, "missing 'b' (barcode) field")
		return
	}
	trail := req.Trail
	if trail == 0 {
		trail = len(req.Barcode) - 1
	}

	start := time.Now()
	hits, err := s.trie.Search(req.Barcode, req.Tau, nil, req.Start, trail)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(req.ID, err.Error())
		return
	}

	out := make([]Hit, 0, hits.Len())
	for i := 0; i < hits.Len(); i++ {
		word, ok := hits.At(i).Data().(string)
		if !ok {
			continue
		}
		out = append(out, Hit{
			Barcode:  word,
			Distance: utils.LevenshteinDistance(req.Barcode, word),
		})
	}

	s.send(Response{
		ID:        req.ID,
		Status:    "ok",
		Hits:      out,
		Count:     len(out),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleStats(req Request) {
	s.send(Response{
		ID:     req.ID,
		Status: "ok",
		Size:   s.inv.Len(),
		MaxTau: s.trie.MaxTau(),
		Bottom: s.trie.Bottom(),
	})
}

func (s *Server) send(resp Response) {
	if err := s.enc.Encode(resp); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string) {
	s.send(Response{ID: id, Status: "error", Error: message})
}
