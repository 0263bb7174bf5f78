package bvh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Option configures Parse.
type Option func(*parser)

// WithLogger routes parser diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(p *parser) {
		p.log = l
	}
}

// ParseFile reads a BVH file and returns its skeleton and motion.
// Motion is nil when the file has no MOTION section.
func ParseFile(path string, opts ...Option) (*Skeleton, *Motion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("bvh: read %s: %w", path, err)
	}
	defer f.Close()

	skel, motion, err := Parse(f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return skel, motion, nil
}

// ParseString parses an in-memory BVH document.
func ParseString(s string, opts ...Option) (*Skeleton, *Motion, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a BVH document: the HIERARCHY section followed by an optional
// MOTION section. Nothing partial is returned on error.
func Parse(r io.Reader, opts ...Option) (*Skeleton, *Motion, error) {
	p := &parser{
		tok: newTokenizer(r),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	skel, err := p.parseHierarchy()
	if err != nil {
		return nil, nil, err
	}
	motion, err := p.parseMotion()
	if err != nil {
		return nil, nil, err
	}

	p.log.Debug().
		Int("joints", len(skel.Joints)).
		Int("nodes", len(skel.Nodes)).
		Int("channels", skel.ChannelCount).
		Int("frames", motion.Len()).
		Msg("bvh parsed")
	return skel, motion, nil
}

type parser struct {
	tok  *tokenizer
	skel *Skeleton
	log  zerolog.Logger
}

func (p *parser) syntaxError(expected, actual string) *SyntaxError {
	return &SyntaxError{Line: p.tok.line, Expected: expected, Actual: actual}
}

func (p *parser) expect(want string) error {
	tok, err := p.tok.next()
	if err != nil {
		return err
	}
	if tok != want {
		return p.syntaxError(want, tok)
	}
	return nil
}

func (p *parser) intToken() (int, error) {
	tok, err := p.tok.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, p.syntaxError("Integer", tok)
	}
	return n, nil
}

func (p *parser) floatToken() (float64, error) {
	tok, err := p.tok.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.syntaxError("Float", tok)
	}
	return v, nil
}

// newNode allocates a joint in the node arena. Addressable joints are also
// registered in the ordered joint list.
func (p *parser) newNode(addressable bool) *Joint {
	j := &Joint{ID: len(p.skel.Nodes)}
	p.skel.Nodes = append(p.skel.Nodes, j)
	if addressable {
		p.skel.Joints = append(p.skel.Joints, j)
	}
	return j
}

func (p *parser) parseHierarchy() (*Skeleton, error) {
	if err := p.expect("HIERARCHY"); err != nil {
		return nil, err
	}
	if err := p.expect("ROOT"); err != nil {
		return nil, err
	}

	p.skel = &Skeleton{NameToIndex: make(map[string]int)}
	root := p.newNode(true)
	root.IsRoot = true
	p.skel.Root = root

	if err := p.parseJointBody(root); err != nil {
		return nil, err
	}

	for i, j := range p.skel.Joints {
		p.skel.NameToIndex[j.Name] = i
	}
	return p.skel, nil
}

// parseJointBody parses `Name { Stmt* }` into j, recursing into child blocks.
func (p *parser) parseJointBody(j *Joint) error {
	name, err := p.tok.next()
	if err != nil {
		return err
	}
	j.Name = name

	if err := p.expect("{"); err != nil {
		return err
	}

	for {
		tok, err := p.tok.next()
		if err != nil {
			return err
		}

		switch tok {
		case "OFFSET":
			var off mgl64.Vec3
			for i := range off {
				if off[i], err = p.floatToken(); err != nil {
					return err
				}
			}
			j.Offset = off

		case "CHANNELS":
			n, err := p.intToken()
			if err != nil {
				return err
			}
			p.skel.ChannelCount += n
			for i := 0; i < n; i++ {
				tok, err := p.tok.next()
				if err != nil {
					return err
				}
				ch, ok := ParseChannel(tok)
				if !ok {
					return p.syntaxError("[XYZ](position|rotation)", tok)
				}
				j.Channels = append(j.Channels, ch)
			}

		case "JOINT", "End":
			// End blocks are leaves: structural only, never addressable.
			child := p.newNode(tok == "JOINT")
			j.Children = append(j.Children, child)
			if err := p.parseJointBody(child); err != nil {
				return err
			}

		case "}":
			if j.IsEndSite() {
				j.Name = EndSiteName
			}
			return nil

		default:
			return p.syntaxError(UnknownWord, tok)
		}
	}
}

func (p *parser) parseMotion() (*Motion, error) {
	tok, err := p.tok.next()
	if errors.Is(err, ErrUnexpectedEOF) {
		p.log.Debug().Msg("no motion data")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tok != "MOTION" {
		return nil, p.syntaxError("MOTION", tok)
	}

	if err := p.expect("Frames:"); err != nil {
		return nil, err
	}
	n, err := p.intToken()
	if err != nil {
		return nil, err
	}

	// "Frame Time:" spans two tokens; either one mismatching reports the pair.
	for _, want := range [...]string{"Frame", "Time:"} {
		if tok, err = p.tok.next(); err != nil {
			return nil, err
		}
		if tok != want {
			return nil, p.syntaxError("Frame Time:", tok)
		}
	}
	delta, err := p.floatToken()
	if err != nil {
		return nil, err
	}

	m := &Motion{
		FrameTime: delta,
		Frames:    make([]Frame, 0, min(n, 4096)),
	}
	for i := 0; i < n; i++ {
		line, err := p.tok.readLine()
		if err != nil {
			return nil, fmt.Errorf("bvh: frame %d of %d: %w", i, n, err)
		}
		fields := strings.Fields(line)
		if len(fields) != p.skel.ChannelCount {
			return nil, p.syntaxError(
				fmt.Sprintf("%d float numbers", p.skel.ChannelCount),
				strconv.Itoa(len(fields)))
		}

		frame := make(Frame, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, p.syntaxError("Float", f)
			}
			frame[k] = v
		}
		m.Frames = append(m.Frames, frame)
	}
	return m, nil
}
