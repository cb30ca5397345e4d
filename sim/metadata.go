// Meta-data loading: parses the program descriptions the simulator replays.
//
// The format is a header line, semicolon-separated K(resource)cycles tokens
// framed by S(start)0 / S(end)0 sentinels, and a trailer line:
//
//	Start Program Meta-Data Code:
//	S(start)0; A(start)0; P(run)14; I(hard drive)10; O(monitor)12; A(end)0;
//	A(start)0; P(run)9; A(end)0;
//	S(end)0.
//	End Program Meta-Data Code.
//
// Each A(start)..A(end) block becomes one Program. The boundary markers stay
// in the program's queue; the execution engine logs the process start/remove
// lines when it dequeues them.

package sim

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	metaDataHeader  = "Start Program Meta-Data Code:"
	metaDataTrailer = "End Program Meta-Data Code."
)

// LoadMetaData reads and parses the meta-data file named by the
// configuration, resolving every operation's cycle time against cfg.
func LoadMetaData(cfg *Config) ([]*Program, error) {
	data, err := os.ReadFile(cfg.MetaDataFilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetaData, err)
	}
	return ParseMetaData(data, cfg)
}

// ParseMetaData parses meta-data file contents into the ordered program list.
func ParseMetaData(data []byte, cfg *Config) ([]*Program, error) {
	tokens, err := metaDataTokens(string(data))
	if err != nil {
		return nil, err
	}

	var programs []*Program
	var current *Program
	for _, tok := range tokens {
		op, err := parseOperation(tok, cfg)
		if err != nil {
			return nil, err
		}

		if op.Kind == KindBoundary && op.Resource == "start" {
			if current != nil {
				return nil, fmt.Errorf("%w: nested A(start) marker", ErrMetaData)
			}
			current = NewProgram()
		}
		if current == nil {
			return nil, fmt.Errorf("%w: operation %q outside a program block", ErrMetaData, tok)
		}
		current.Enqueue(op)
		if op.Kind == KindBoundary && op.Resource == "end" {
			programs = append(programs, current)
			current = nil
		}
	}
	if current != nil {
		return nil, fmt.Errorf("%w: program block missing its A(end) marker", ErrMetaData)
	}
	return programs, nil
}

// metaDataTokens validates the file framing and returns the operation tokens
// between the S(start)0 and S(end)0 sentinels.
func metaDataTokens(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	header, body, found := strings.Cut(content, "\n")
	if !found || strings.TrimSpace(header) != metaDataHeader {
		return nil, fmt.Errorf("%w: meta-data header is missing", ErrMetaData)
	}
	body = strings.TrimSpace(body)
	if !strings.HasSuffix(body, metaDataTrailer) {
		return nil, fmt.Errorf("%w: file does not end after simulator operations end", ErrMetaData)
	}
	body = strings.TrimSpace(strings.TrimSuffix(body, metaDataTrailer))
	if !strings.HasSuffix(body, "S(end)0.") {
		return nil, fmt.Errorf("%w: simulator end flag is missing", ErrMetaData)
	}
	body = strings.TrimSuffix(body, "S(end)0.")

	var tokens []string
	for _, raw := range strings.Split(body, ";") {
		if tok := strings.TrimSpace(raw); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 || tokens[0] != "S(start)0" {
		return nil, fmt.Errorf("%w: simulator start flag is missing", ErrMetaData)
	}
	return tokens[1:], nil
}

// parseOperation decodes one K(resource)cycles token and resolves its cycle
// time from the configuration.
func parseOperation(tok string, cfg *Config) (Operation, error) {
	open := strings.IndexByte(tok, '(')
	closing := strings.IndexByte(tok, ')')
	if open != 1 || closing < open {
		return Operation{}, fmt.Errorf("%w: malformed operation %q", ErrMetaData, tok)
	}

	kind, err := ParseOpKind(tok[0])
	if err != nil {
		return Operation{}, fmt.Errorf("%w: in operation %q", ErrMetaData, tok)
	}
	resource := tok[open+1 : closing]

	cycles, err := strconv.Atoi(tok[closing+1:])
	if err != nil || cycles < 0 {
		return Operation{}, fmt.Errorf("%w: bad cycle count in operation %q", ErrMetaData, tok)
	}

	if kind == KindBoundary && resource != "start" && resource != "end" {
		return Operation{}, fmt.Errorf("%w: unknown boundary marker %q", ErrMetaData, tok)
	}
	cycleTime, err := cfg.CycleTime(kind, resource)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: kind, Resource: resource, Cycles: cycles, CycleTime: cycleTime}, nil
}
