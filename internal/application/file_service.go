package application

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hailam/fillfile/internal/ports"
)

// Request is one invocation's input, as collected by the command line.
type Request struct {
	Path  string
	Size  string
	Ascii bool
	Lorem bool
}

// ContentMode derives the content mode from the flags. Validation guarantees
// at most one flag is set.
func (r Request) ContentMode() ports.ContentMode {
	switch {
	case r.Ascii:
		return ports.ContentModeASCII
	case r.Lorem:
		return ports.ContentModeLorem
	default:
		return ports.ContentModeZero
	}
}

// FileService orchestrates file creation by validating the request, parsing
// the size, selecting the correct synthesizer, and writing its output.
type FileService struct {
	factory ports.SynthesizerFactory
	parser  ports.SizeParser
	writer  ports.FileWriter
	log     logrus.FieldLogger
}

// NewFileService constructs a FileService with the given collaborators.
func NewFileService(factory ports.SynthesizerFactory, parser ports.SizeParser, writer ports.FileWriter, log logrus.FieldLogger) *FileService {
	return &FileService{factory: factory, parser: parser, writer: writer, log: log}
}

// CreateFile writes a file of exactly the requested size and returns the
// number of bytes written. The first failing stage ends the call; its error
// is returned as is so callers can match the error kind.
func (s *FileService) CreateFile(req Request) (uint64, error) {
	log := s.log.WithField("path", req.Path)

	// 1. Validate flags and path before anything else
	log.Trace("Checking if the arguments are valid")
	if err := ValidateRequest(req); err != nil {
		log.WithError(err).Error("Invalid arguments")
		return 0, err
	}

	// 2. Parse the size expression into bytes
	log.WithField("size", req.Size).Trace("Parsing size expression")
	size, err := s.parser.Parse(req.Size)
	if err != nil {
		log.WithError(err).WithField("size", req.Size).Error("Invalid size expression")
		return 0, err
	}
	byteCount, err := size.ByteCount()
	if err != nil {
		log.WithError(err).WithField("size", size.String()).Error("Size does not fit in 64 bits")
		return 0, err
	}
	log.WithFields(logrus.Fields{"size": size.String(), "bytes": byteCount}).Debug("Parsed size expression")

	// 3. Retrieve the synthesizer for this mode
	mode := req.ContentMode()
	synth, err := s.factory.For(mode)
	if err != nil {
		log.WithError(err).Error("No synthesizer available")
		return 0, err
	}
	log.WithField("mode", mode).Debug("Selected content mode")

	// 4. Synthesize exactly byteCount bytes
	log.Trace("Synthesizing content")
	data, err := synth.Synthesize(byteCount)
	if err != nil {
		log.WithError(err).WithField("mode", mode).Error("Failed to synthesize content")
		return 0, err
	}

	// 5. Persist
	log.Trace("Writing content to disk")
	if err := s.writer.Write(req.Path, data); err != nil {
		log.WithError(err).Error("Failed to write file")
		return 0, err
	}

	log.WithField("mode", mode).Infof("Wrote %s", humanize.IBytes(byteCount))
	return byteCount, nil
}
