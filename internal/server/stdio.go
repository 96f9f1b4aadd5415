package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// StdioServer serves JSON-RPC requests over stdin/stdout
type StdioServer struct {
	handler *Handler
	reader  *bufio.Reader
	writer  *bufio.Writer
}

// NewStdioServer creates a stdio server bound to os.Stdin and os.Stdout
func NewStdioServer(handler *Handler) *StdioServer {
	return &StdioServer{
		handler: handler,
		reader:  bufio.NewReader(os.Stdin),
		writer:  bufio.NewWriter(os.Stdout),
	}
}

// newStdioServerPipe builds a stdio server over arbitrary streams (for tests)
func newStdioServerPipe(handler *Handler, r io.Reader, w io.Writer) *StdioServer {
	return &StdioServer{
		handler: handler,
		reader:  bufio.NewReader(r),
		writer:  bufio.NewWriter(w),
	}
}

// Serve reads framed messages until EOF. Invalid payloads are logged and
// dropped; only transport-level failures end the loop with an error.
func (s *StdioServer) Serve(ctx context.Context) error {
	for {
		payload, err := readMessage(s.reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			log.Warn().Err(err).Msg("dropping invalid json-rpc payload")
			continue
		}

		resp := s.handler.Handle(ctx, &req)
		if resp == nil {
			continue
		}

		if err := writeMessage(s.writer, resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// MCP clients use Content-Length framing over stdio, but line-delimited
// JSON is also accepted for local smoke tests.
func readMessage(reader *bufio.Reader) ([]byte, error) {
	firstLine, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			trimmed := strings.TrimSpace(firstLine)
			if trimmed == "" {
				return nil, io.EOF
			}
			if strings.HasPrefix(trimmed, "{") {
				return []byte(trimmed), nil
			}
		}
		return nil, err
	}

	trimmed := strings.TrimSpace(firstLine)
	if trimmed == "" {
		return nil, fmt.Errorf("received empty message")
	}
	if strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	headers := []string{strings.TrimRight(firstLine, "\r\n")}
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		clean := strings.TrimRight(line, "\r\n")
		if clean == "" {
			break
		}
		headers = append(headers, clean)
	}

	length, err := parseContentLength(headers)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}

func parseContentLength(headers []string) (int, error) {
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(parts[0]), "Content-Length") {
			continue
		}
		rawLen := strings.TrimSpace(parts[1])
		length, err := strconv.Atoi(rawLen)
		if err != nil || length <= 0 {
			return 0, fmt.Errorf("invalid Content-Length value: %q", rawLen)
		}
		return length, nil
	}
	return 0, fmt.Errorf("missing Content-Length header")
}

func writeMessage(writer *bufio.Writer, resp *JSONRPCResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Content-Length: %d\r\n\r\n", len(payload)); err != nil {
		return err
	}
	if _, err := writer.Write(payload); err != nil {
		return err
	}
	return writer.Flush()
}
